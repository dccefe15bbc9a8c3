package services

import (
	"context"
	"testing"

	"kartoteka.link/models"
	"kartoteka.link/pkg/queryparams"
	"kartoteka.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCardRepository testlerde ICardRepository yerine geçer.
type fakeCardRepository struct {
	cards        map[uint]*models.Card
	autocomplete []models.Card
	localisation *models.CardLocalisation
}

func (f *fakeCardRepository) GetCardByID(_ context.Context, id uint) (*models.Card, error) {
	if card, ok := f.cards[id]; ok {
		return card, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCardRepository) GetCardWithPrintings(ctx context.Context, id uint) (*models.Card, error) {
	return f.GetCardByID(ctx, id)
}

func (f *fakeCardRepository) GetPrintingByID(_ context.Context, _ uint) (*models.CardPrinting, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeCardRepository) GetPrintingWithSetSiblings(_ context.Context, _ uint) (*models.CardPrinting, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeCardRepository) SearchCardsByName(_ context.Context, _ string, _ queryparams.ListParams) ([]models.Card, int64, error) {
	return nil, 0, nil
}

func (f *fakeCardRepository) AutocompleteByName(_ context.Context, _ string, _ int) ([]models.Card, error) {
	return f.autocomplete, nil
}

func (f *fakeCardRepository) GetRulingsForCard(_ context.Context, _ uint) ([]models.CardRuling, error) {
	return nil, nil
}

func (f *fakeCardRepository) GetLastEnglishLocalisationWithMultiverseID(_ context.Context, _ uint) (*models.CardLocalisation, error) {
	return f.localisation, nil
}

var _ repositories.ICardRepository = (*fakeCardRepository)(nil)

func namedCard(id uint, name string) *models.Card {
	card := &models.Card{Name: name, Layout: models.LayoutNormal}
	card.ID = id
	card.Faces = []models.CardFace{{Name: name, TypeLine: "Creature"}}
	return card
}

func TestAutocompleteSortsPrefixMatchesFirst(t *testing.T) {
	svc := &CardService{cardRepo: &fakeCardRepository{
		autocomplete: []models.Card{
			*namedCard(1, "Arbor Elf"),
			*namedCard(2, "Elfhame Druid"),
			*namedCard(3, "Wood Elves"),
			*namedCard(4, "Elf Warrior"),
		},
	}}

	entries, err := svc.Autocomplete(context.Background(), "elf")

	require.NoError(t, err)
	require.Len(t, entries, 4)
	// "elf" ile başlayanlar önce, kendi içlerinde alfabetik.
	assert.Equal(t, "Elf Warrior", entries[0].Label)
	assert.Equal(t, "Elfhame Druid", entries[1].Label)
	assert.Equal(t, "Arbor Elf", entries[2].Label)
	assert.Equal(t, "Wood Elves", entries[3].Label)
}

func TestAutocompleteEmptyQueryReturnsNothing(t *testing.T) {
	svc := &CardService{cardRepo: &fakeCardRepository{}}

	entries, err := svc.Autocomplete(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExternalLinksIncludeGathererWhenMultiverseIDExists(t *testing.T) {
	multiverseID := 409574
	svc := &CardService{cardRepo: &fakeCardRepository{
		cards: map[uint]*models.Card{1: namedCard(1, "Demo Dragon")},
		localisation: &models.CardLocalisation{
			CardName:     "Demo Dragon",
			MultiverseID: &multiverseID,
		},
	}}

	links, err := svc.ExternalLinks(context.Background(), 1)

	require.NoError(t, err)
	require.NotEmpty(t, links)
	assert.Equal(t, "View on Gatherer", links[0].Name)
	assert.Contains(t, links[0].URL, "multiverseid=409574")
}

func TestExternalLinksOmitGathererWithoutEnglishLocalisation(t *testing.T) {
	svc := &CardService{cardRepo: &fakeCardRepository{
		cards: map[uint]*models.Card{1: namedCard(1, "Demo Dragon")},
	}}

	links, err := svc.ExternalLinks(context.Background(), 1)

	require.NoError(t, err)
	require.NotEmpty(t, links)
	assert.Equal(t, "Search on Channel Fireball", links[0].Name)
	for _, link := range links {
		assert.NotEqual(t, "View on Gatherer", link.Name)
	}
}

func TestCardKingdomFilterUsesFirstFaceName(t *testing.T) {
	card := namedCard(1, "Delver of Secrets // Insectile Aberration")
	card.Layout = models.LayoutTransform
	card.Faces = []models.CardFace{
		{Name: "Delver of Secrets", Side: "a"},
		{Name: "Insectile Aberration", Side: "b"},
	}

	assert.Equal(t, "Delver of Secrets", cardKingdomFilter(card))
}

func TestCardKingdomFilterJoinsSplitFaces(t *testing.T) {
	card := namedCard(1, "Fire // Ice")
	card.Layout = models.LayoutSplit
	card.Faces = []models.CardFace{
		{Name: "Fire", Side: "a"},
		{Name: "Ice", Side: "b"},
	}

	assert.Equal(t, "Fire // Ice", cardKingdomFilter(card))
}

func TestCardKingdomFilterMarksTokens(t *testing.T) {
	card := namedCard(1, "Soldier")
	card.IsToken = true

	assert.Equal(t, "Soldier token", cardKingdomFilter(card))
}

func TestCardKingdomFilterRewritesEmblems(t *testing.T) {
	card := namedCard(1, "Chandra Emblem")
	card.IsToken = true
	card.Faces = []models.CardFace{{Name: "Chandra Emblem", TypeLine: "Emblem"}}

	assert.Equal(t, "Emblem (Chandra)", cardKingdomFilter(card))
}

func TestSearchCardsByNameClampsInvalidPagination(t *testing.T) {
	svc := &CardService{cardRepo: &fakeCardRepository{}}
	params := queryparams.ListParams{Name: "Bear", Page: -3, PerPage: 0, OrderBy: "yukarı"}

	result, err := svc.SearchCardsByName(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, queryparams.DefaultPage, result.Meta.CurrentPage)
	assert.Equal(t, queryparams.DefaultPerPage, result.Meta.PerPage)
}

func TestExternalLinksUseFrontFaceNameForFaceScopedSites(t *testing.T) {
	card := namedCard(1, "Delver of Secrets // Insectile Aberration")
	card.Layout = models.LayoutTransform
	card.Faces = []models.CardFace{
		{Name: "Delver of Secrets", Side: "a"},
		{Name: "Insectile Aberration", Side: "b"},
	}
	svc := &CardService{cardRepo: &fakeCardRepository{cards: map[uint]*models.Card{1: card}}}

	links, err := svc.ExternalLinks(context.Background(), 1)

	require.NoError(t, err)
	for _, link := range links {
		if link.Name == "Card Analysis on EDHREC" {
			assert.Contains(t, link.URL, "cc=Delver+of+Secrets")
			assert.NotContains(t, link.URL, "Insectile")
			return
		}
	}
	t.Fatal("EDHREC bağlantısı üretilmedi")
}

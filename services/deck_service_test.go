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

func deckCard(name string, count int, board string, faces ...models.CardFace) models.DeckCard {
	if len(faces) == 0 {
		faces = []models.CardFace{{Name: name, TypeLine: "Creature"}}
	}
	return models.DeckCard{
		Count: count,
		Board: board,
		Card:  models.Card{Name: name, Faces: faces},
	}
}

func basicLand(name string, count int, symbol string) models.DeckCard {
	return deckCard(name, count, models.BoardMain, models.CardFace{
		Name:      name,
		TypeLine:  "Basic Land",
		RulesText: "{T}: Add {" + symbol + "}.",
	})
}

func TestValidateCardLimitFlagsOvercount(t *testing.T) {
	rows := []models.DeckCard{
		deckCard("Lightning Bolt", 5, models.BoardMain),
	}

	err := validateCardLimit(rows, 4)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeckValidation)
	assert.Contains(t, err.Error(), "Lightning Bolt")
}

func TestValidateCardLimitExemptsBasicLands(t *testing.T) {
	rows := []models.DeckCard{basicLand("Forest", 24, "G")}

	assert.NoError(t, validateCardLimit(rows, 4))
}

func TestValidateCardLimitExemptsAnyNumberCards(t *testing.T) {
	rows := []models.DeckCard{
		deckCard("Relentless Rats", 20, models.BoardMain, models.CardFace{
			Name:      "Relentless Rats",
			TypeLine:  "Creature - Rat",
			RulesText: "A deck can have any number of cards named Relentless Rats.",
		}),
	}

	assert.NoError(t, validateCardLimit(rows, 4))
}

func TestValidateCommanderRequiresOne(t *testing.T) {
	rows := []models.DeckCard{deckCard("Forest", 99, models.BoardMain)}

	err := validateCommander(rows)

	assert.ErrorIs(t, err, ErrDeckValidation)
}

func TestValidateCommanderRequiresLegend(t *testing.T) {
	commander := deckCard("Grizzly Bears", 1, models.BoardMain, models.CardFace{
		Name:     "Grizzly Bears",
		TypeLine: "Creature - Bear",
	})
	commander.IsCommander = true

	err := validateCommander([]models.DeckCard{commander})

	assert.ErrorIs(t, err, ErrDeckValidation)
}

func TestValidateCommanderAllowsPartnerPair(t *testing.T) {
	makeCommander := func(name string) models.DeckCard {
		dc := deckCard(name, 1, models.BoardMain, models.CardFace{
			Name:      name,
			TypeLine:  "Legendary Creature",
			RulesText: "Partner",
		})
		dc.IsCommander = true
		return dc
	}

	rows := []models.DeckCard{makeCommander("Akiri"), makeCommander("Silas Renn")}

	assert.NoError(t, validateCommander(rows))
}

func TestValidateMinimumSizeCountsMainboardOnly(t *testing.T) {
	rows := []models.DeckCard{
		basicLand("Forest", 50, "G"),
		deckCard("Bear", 15, models.BoardSide),
	}

	err := validateMinimumSize(rows, 60)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "(50/60)")
}

func TestValidateBoardLimitRejectsOversizedSideboard(t *testing.T) {
	rows := []models.DeckCard{deckCard("Bear", 16, models.BoardSide)}

	assert.ErrorIs(t, validateBoardLimit(rows, models.BoardSide, 15), ErrDeckValidation)
}

func TestValidateDeckFormatCommanderRules(t *testing.T) {
	commander := deckCard("Demo Legend", 1, models.BoardMain, models.CardFace{
		Name:     "Demo Legend",
		TypeLine: "Legendary Creature - Dragon",
	})
	commander.IsCommander = true
	rows := []models.DeckCard{commander, basicLand("Mountain", 99, "R")}

	assert.NoError(t, validateDeckFormat(context.Background(), nil, models.FormatEDH, rows))

	// Yan deste komutan formatında yasaktır.
	withSide := append(rows, deckCard("Bear", 1, models.BoardSide))
	assert.ErrorIs(t,
		validateDeckFormat(context.Background(), nil, models.FormatEDH, withSide),
		ErrDeckValidation)
}

func TestGetColourWeightsCountsLandAndCostSymbols(t *testing.T) {
	svc := &DeckService{}
	deck := &models.Deck{Cards: []models.DeckCard{
		basicLand("Forest", 10, "G"),
		basicLand("Island", 8, "U"),
		deckCard("Giant Growth", 4, models.BoardMain, models.CardFace{
			Name:     "Giant Growth",
			TypeLine: "Instant",
			ManaCost: "{G}",
		}),
		// Yan destedeki kartlar sayılmaz.
		deckCard("Counterspell", 4, models.BoardSide, models.CardFace{
			Name:     "Counterspell",
			TypeLine: "Instant",
			ManaCost: "{U}{U}",
		}),
	}}

	weights := svc.GetColourWeights(deck)

	assert.Equal(t, map[string]int{"G": 10, "U": 8}, weights.LandSymbols)
	assert.Equal(t, map[string]int{"G": 4}, weights.CostSymbols)
}

func TestLandAddPatternMatchesManaAbilityOnly(t *testing.T) {
	pattern := landAddPattern("G")

	assert.True(t, pattern.MatchString("{T}: Add {G}."))
	assert.True(t, pattern.MatchString("{T}: Add {G} or {W}."))
	assert.False(t, pattern.MatchString("{T}: Add {W}."))
	// "Add" iki nokta içermeyen metinde eşleşmez.
	assert.False(t, pattern.MatchString("Add {G} to your mana pool"))
}

// fakeDeckRepository testlerde IDeckRepository yerine geçer.
type fakeDeckRepository struct {
	decks      map[uint]*models.Deck
	deletedIDs []uint
}

func (f *fakeDeckRepository) Create(_ context.Context, _ *models.Deck) error { return nil }
func (f *fakeDeckRepository) Save(_ context.Context, _ *models.Deck) error   { return nil }

func (f *fakeDeckRepository) Delete(_ context.Context, id uint) error {
	f.deletedIDs = append(f.deletedIDs, id)
	delete(f.decks, id)
	return nil
}

func (f *fakeDeckRepository) GetDeckByID(_ context.Context, id uint) (*models.Deck, error) {
	if deck, ok := f.decks[id]; ok {
		return deck, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeDeckRepository) ReplaceCards(_ context.Context, _ uint, _ []models.DeckCard) error {
	return nil
}

func (f *fakeDeckRepository) FindDecksByOwnerPaginated(_ context.Context, _ uint, _ bool, _ queryparams.ListParams) ([]models.Deck, int64, error) {
	return nil, 0, nil
}

func (f *fakeDeckRepository) CountDecksByOwner(_ context.Context, _ uint) (int64, error) {
	return 0, nil
}

func (f *fakeDeckRepository) DeckCardsForCard(_ context.Context, _, _ uint) ([]models.DeckCard, error) {
	return nil, nil
}

func (f *fakeDeckRepository) UnusedOwnedCardIDs(_ context.Context, _ uint) ([]uint, error) {
	return nil, nil
}

var _ repositories.IDeckRepository = (*fakeDeckRepository)(nil)

func TestDeleteDeckRemovesOwnDeckByID(t *testing.T) {
	deck := &models.Deck{OwnerID: 7}
	deck.ID = 42
	repo := &fakeDeckRepository{decks: map[uint]*models.Deck{42: deck}}
	svc := &DeckService{repo: repo}

	require.NoError(t, svc.DeleteDeck(context.Background(), 42, 7))
	assert.Equal(t, []uint{42}, repo.deletedIDs)
}

func TestDeleteDeckRefusesForeignDeck(t *testing.T) {
	deck := &models.Deck{OwnerID: 7}
	deck.ID = 42
	repo := &fakeDeckRepository{decks: map[uint]*models.Deck{42: deck}}
	svc := &DeckService{repo: repo}

	assert.ErrorIs(t, svc.DeleteDeck(context.Background(), 42, 9), ErrDeckForbidden)
	assert.Empty(t, repo.deletedIDs)
}

func TestValidateDeckFormatStandardSideboardLimit(t *testing.T) {
	rows := []models.DeckCard{
		basicLand("Mountain", 60, "R"),
		deckCard("Bear", 4, models.BoardSide),
	}

	require.NoError(t, validateDeckFormat(context.Background(), nil, models.FormatStandard, rows))

	rows = append(rows, deckCard("Wolf", 4, models.BoardSide),
		deckCard("Elf", 4, models.BoardSide),
		deckCard("Goblin", 4, models.BoardSide))
	assert.ErrorIs(t,
		validateDeckFormat(context.Background(), nil, models.FormatStandard, rows),
		ErrDeckValidation)
}

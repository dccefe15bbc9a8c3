package handlers

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"kartoteka.link/models"
	"kartoteka.link/pkg/queryparams"
	"kartoteka.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDeckService testlerde IDeckService yerine geçer ve SaveDeck
// çağrılarını kaydeder.
type fakeDeckService struct {
	savedCards []services.DeckCardInput
	saveCalls  int
}

func (f *fakeDeckService) GetDeckByID(_ context.Context, _ uint, _ uint) (*models.Deck, error) {
	return nil, services.ErrDeckNotFound
}

func (f *fakeDeckService) GetDecksForUser(_ context.Context, _ uint, _ bool, _ queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	return &queryparams.PaginatedResult{}, nil
}

func (f *fakeDeckService) SaveDeck(_ context.Context, _ uint, _ *models.Deck, cards []services.DeckCardInput) error {
	f.saveCalls++
	f.savedCards = cards
	return nil
}

func (f *fakeDeckService) DeleteDeck(_ context.Context, _ uint, _ uint) error { return nil }

func (f *fakeDeckService) GetDecksForCard(_ context.Context, _ uint, _ uint) (*services.CardDecksTabData, error) {
	return nil, nil
}

func (f *fakeDeckService) GetColourWeights(_ *models.Deck) services.ColourWeights {
	return services.ColourWeights{}
}

func (f *fakeDeckService) GetStats(_ context.Context, _ *models.User) (*services.DeckStats, error) {
	return nil, nil
}

var _ services.IDeckService = (*fakeDeckService)(nil)

// newDeckTestApp oturumlu bir test uygulaması ve sahte servisli handler kurar.
func newDeckTestApp(svc services.IDeckService) *fiber.App {
	app := fiber.New()
	store := session.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		c.Locals("userID", uint(7))
		return c.Next()
	})
	handler := &DeckHandler{deckService: svc}
	app.Post("/decks/create", handler.CreateDeck)
	return app
}

func postDeckForm(t *testing.T, app *fiber.App, values url.Values) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/decks/create", strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSaveDeckRejectsMisalignedCommanderColumn(t *testing.T) {
	svc := &fakeDeckService{}
	app := newDeckTestApp(svc)

	// İki satır ama tek is_commander değeri: satırlar kaymış demektir.
	status := postDeckForm(t, app, url.Values{
		"name":         {"Test"},
		"format":       {models.FormatEDH},
		"card_id":      {"1", "2"},
		"count":        {"1", "4"},
		"board":        {models.BoardMain, models.BoardMain},
		"is_commander": {"true"},
	})

	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Zero(t, svc.saveCalls, "hizasız form kaydedilmemeli")
}

func TestSaveDeckKeepsCommanderFlagOnMatchingRow(t *testing.T) {
	svc := &fakeDeckService{}
	app := newDeckTestApp(svc)

	status := postDeckForm(t, app, url.Values{
		"name":         {"Test"},
		"format":       {models.FormatEDH},
		"card_id":      {"1", "2"},
		"count":        {"1", "99"},
		"board":        {models.BoardMain, models.BoardMain},
		"is_commander": {"false", "true"},
	})

	assert.Equal(t, fiber.StatusFound, status)
	require.Len(t, svc.savedCards, 2)
	assert.False(t, svc.savedCards[0].IsCommander)
	assert.True(t, svc.savedCards[1].IsCommander)
}

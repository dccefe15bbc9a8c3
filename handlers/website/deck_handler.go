package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"
	"kartoteka.link/pkg/flashmessages"
	"kartoteka.link/pkg/queryparams"
	"kartoteka.link/pkg/renderer"
	"kartoteka.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeckHandler deste sayfaları için handler.
type DeckHandler struct {
	deckService services.IDeckService
	authService services.IAuthService
}

// NewDeckHandler yeni bir DeckHandler örneği oluşturur.
func NewDeckHandler() *DeckHandler {
	return &DeckHandler{
		deckService: services.NewDeckService(),
		authService: services.NewAuthService(),
	}
}

// deckForm deste kaydetme formunun gövdesi. Satır alanları aynı adla
// tekrarlanır ve sırayla eşleşir.
type deckForm struct {
	Name        string   `form:"name"`
	Subtitle    string   `form:"subtitle"`
	Description string   `form:"description"`
	Format      string   `form:"format"`
	IsPrivate   bool     `form:"is_private"`
	IsPrototype bool     `form:"is_prototype"`
	CardIDs     []uint   `form:"card_id"`
	Counts      []int    `form:"count"`
	Boards      []string `form:"board"`
	Commanders  []bool   `form:"is_commander"`
}

// ListDecks kullanıcının destelerini listeler.
func (h *DeckHandler) ListDecks(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("date_created")
	}
	params.Validate()

	result, err := h.deckService.GetDecksForUser(c.UserContext(), userID, false, params)
	renderData := fiber.Map{
		"Title":  "Destelerim",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		configslog.Log.Error("ListDecks error", zap.Uint("userID", userID), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Desteler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Deck{}, Meta: queryparams.PaginationMeta{}}
	}

	// Taslaklar ayrı, sayfalamasız kısa bir liste olarak gösterilir.
	prototypes, err := h.deckService.GetDecksForUser(c.UserContext(), userID, true, queryparams.DefaultListParams("date_created"))
	if err == nil {
		renderData["Prototypes"] = prototypes.Data
	}
	return renderer.Render(c, "website/decks/list", "layouts/main_layout", renderData, http.StatusOK)
}

// ShowDeck tek bir desteyi renk ağırlıklarıyla gösterir.
func (h *DeckHandler) ShowDeck(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	deck, err := h.deckService.GetDeckByID(c.UserContext(), uint(id), userID)
	if err != nil {
		if errors.Is(err, services.ErrDeckNotFound) || errors.Is(err, services.ErrDeckForbidden) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Deste bulunamadı.")
			return c.Redirect("/decks", fiber.StatusSeeOther)
		}
		configslog.Log.Error("ShowDeck error", zap.Int("id", id), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return renderer.Render(c, "website/decks/show", "layouts/main_layout", fiber.Map{
		"Title":   deck.Name,
		"Deck":    deck,
		"Weights": h.deckService.GetColourWeights(deck),
		"IsOwner": deck.OwnerID == userID,
	}, http.StatusOK)
}

// ColourWeightsJSON destenin mana sembolü ağırlıklarını grafik verisi
// olarak döndürür.
func (h *DeckHandler) ColourWeightsJSON(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID"})
	}

	deck, err := h.deckService.GetDeckByID(c.UserContext(), uint(id), userID)
	if err != nil {
		if errors.Is(err, services.ErrDeckNotFound) || errors.Is(err, services.ErrDeckForbidden) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deste bulunamadı"})
		}
		configslog.Log.Error("ColourWeightsJSON error", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ağırlıklar hesaplanamadı"})
	}
	return c.JSON(h.deckService.GetColourWeights(deck))
}

// ShowCreateDeck yeni deste formunu gösterir.
func (h *DeckHandler) ShowCreateDeck(c *fiber.Ctx) error {
	formData := flashmessages.GetFlashFormData(c)
	return renderer.Render(c, "website/decks/create", "layouts/main_layout", fiber.Map{
		"Title":    "Yeni Deste",
		"Formats":  models.DeckFormatChoices(),
		"Boards":   models.DeckBoards(),
		"FormData": formData,
	})
}

// CreateDeck yeni bir deste kaydeder.
func (h *DeckHandler) CreateDeck(c *fiber.Ctx) error {
	return h.saveDeck(c, 0)
}

// ShowUpdateDeck deste düzenleme formunu gösterir.
func (h *DeckHandler) ShowUpdateDeck(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/decks")
	}

	deck, err := h.deckService.GetDeckByID(c.UserContext(), uint(id), userID)
	if err != nil || deck.OwnerID != userID {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Deste bulunamadı veya düzenleme yetkiniz yok.")
		return c.Redirect("/decks", fiber.StatusSeeOther)
	}

	return renderer.Render(c, "website/decks/update", "layouts/main_layout", fiber.Map{
		"Title":   "Desteyi Düzenle",
		"Deck":    deck,
		"Formats": models.DeckFormatChoices(),
		"Boards":  models.DeckBoards(),
	})
}

// UpdateDeck mevcut desteyi günceller.
func (h *DeckHandler) UpdateDeck(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/decks")
	}
	return h.saveDeck(c, uint(id))
}

// saveDeck form gövdesini çözüp CreateDeck/UpdateDeck ortak akışını yürütür.
func (h *DeckHandler) saveDeck(c *fiber.Ctx, deckID uint) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	redirectOnError := "/decks/create"
	if deckID != 0 {
		redirectOnError = fmt.Sprintf("/decks/update/%d", deckID)
	}

	var form deckForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}
	// Komutan değeri her satırda gizli alanla gönderilir; dizi uzunlukları
	// tutmuyorsa satırlar kaydırılmış demektir.
	if len(form.CardIDs) != len(form.Counts) ||
		len(form.CardIDs) != len(form.Boards) ||
		len(form.CardIDs) != len(form.Commanders) {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Deste satırları eksik gönderildi.")
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	cards := make([]services.DeckCardInput, 0, len(form.CardIDs))
	for i := range form.CardIDs {
		cards = append(cards, services.DeckCardInput{
			CardID:      form.CardIDs[i],
			Count:       form.Counts[i],
			Board:       form.Boards[i],
			IsCommander: form.Commanders[i],
		})
	}

	deck := &models.Deck{
		Name:        form.Name,
		Subtitle:    form.Subtitle,
		Description: form.Description,
		Format:      form.Format,
		IsPrivate:   form.IsPrivate,
		IsPrototype: form.IsPrototype,
		DateCreated: time.Now(),
	}
	deck.ID = deckID

	if err := h.deckService.SaveDeck(c.UserContext(), userID, deck, cards); err != nil {
		errMsg := "Deste kaydedilemedi."
		var svcErr services.DeckServiceError
		if errors.As(err, &svcErr) {
			errMsg = err.Error()
		} else {
			configslog.Log.Error("saveDeck error", zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Deste kaydedildi.")
	return c.Redirect(fmt.Sprintf("/decks/%d", deck.ID), fiber.StatusFound)
}

// DeleteDeck desteyi siler.
func (h *DeckHandler) DeleteDeck(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/decks")
	}

	if err := h.deckService.DeleteDeck(c.UserContext(), uint(id), userID); err != nil {
		errMsg := "Deste silinemedi."
		if errors.Is(err, services.ErrDeckNotFound) || errors.Is(err, services.ErrDeckForbidden) {
			errMsg = err.Error()
		} else {
			configslog.Log.Error("DeleteDeck error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/decks", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Deste silindi.")
	return c.Redirect("/decks", fiber.StatusFound)
}

// Stats deste istatistik sayfasını gösterir.
func (h *DeckHandler) Stats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	user, err := h.authService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return c.Redirect("/auth/login")
	}

	stats, err := h.deckService.GetStats(c.UserContext(), user)
	renderData := fiber.Map{"Title": "Deste İstatistikleri", "Stats": stats}
	if err != nil {
		configslog.Log.Error("Stats error", zap.Uint("userID", userID), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "İstatistikler hesaplanamadı."
	}
	return renderer.Render(c, "website/decks/stats", "layouts/main_layout", renderData, http.StatusOK)
}

// RerollUnused kullanılmayan kart seçkisinin tohumunu yeniler.
func (h *DeckHandler) RerollUnused(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	if _, err := h.authService.RerollUnusedCardsSeed(c.UserContext(), userID); err != nil {
		configslog.Log.Error("RerollUnused error", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Seçki yenilenemedi.")
	}
	return c.Redirect("/decks/stats", fiber.StatusSeeOther)
}

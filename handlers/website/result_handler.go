package handlers // handlers/website paketi

import (
	"errors"
	"net/http"
	"strconv"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/pkg/renderer"
	"kartoteka.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResultHandler arama sonucu sekmelerinin AJAX parçalarını üretir.
type ResultHandler struct {
	cardService      services.ICardService
	ownershipService services.IOwnershipService
	deckService      services.IDeckService
	priceService     services.IPriceService
}

// NewResultHandler yeni bir ResultHandler örneği oluşturur.
func NewResultHandler() *ResultHandler {
	return &ResultHandler{
		cardService:      services.NewCardService(),
		ownershipService: services.NewOwnershipService(),
		deckService:      services.NewDeckService(),
		priceService:     services.NewPriceService(),
	}
}

// paramID ":id" parametresini pozitif uint olarak okur.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("geçersiz ID")
	}
	return uint(id), nil
}

// requireFragmentUser giriş gerektiren sekmeler için kullanıcıyı alır.
// Giriş yoksa 401 durumuyla bir uyarı parçası döner.
func requireFragmentUser(c *fiber.Ctx) (uint, bool, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		err := renderer.RenderFragment(c, "website/fragments/login_required", fiber.Map{}, http.StatusUnauthorized)
		return 0, false, err
	}
	return userID, true, nil
}

// Details seçili baskının detay sekmesini döndürür.
func (h *ResultHandler) Details(c *fiber.Ctx) error {
	printingID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	printing, err := h.cardService.GetPrintingByID(c.UserContext(), printingID)
	if err != nil {
		if errors.Is(err, services.ErrPrintingNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		configslog.Log.Error("Details fragment error", zap.Uint("printingID", printingID), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/details", fiber.Map{
		"Printing": printing,
	})
}

// Rulings kartın kural sekmesini döndürür.
func (h *ResultHandler) Rulings(c *fiber.Ctx) error {
	cardID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	card, err := h.cardService.GetCardByID(c.UserContext(), cardID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	rulings, err := h.cardService.GetRulingsForCard(c.UserContext(), cardID)
	if err != nil {
		configslog.Log.Error("Rulings fragment error", zap.Uint("cardID", cardID), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/rulings", fiber.Map{
		"Card":    card,
		"Rulings": rulings,
	})
}

// Languages baskının dil sekmesini döndürür.
func (h *ResultHandler) Languages(c *fiber.Ctx) error {
	printingID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	printing, err := h.cardService.GetPrintingByID(c.UserContext(), printingID)
	if err != nil {
		if errors.Is(err, services.ErrPrintingNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/languages", fiber.Map{
		"Printing": printing,
	})
}

// PrintingImage baskı görselinin parçasını döndürür.
func (h *ResultHandler) PrintingImage(c *fiber.Ctx) error {
	printingID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	printing, err := h.cardService.GetPrintingByID(c.UserContext(), printingID)
	if err != nil {
		if errors.Is(err, services.ErrPrintingNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/card_image", fiber.Map{
		"Printing": printing,
	})
}

// Ownership kullanıcının bu karta ait koleksiyon sekmesini döndürür.
func (h *ResultHandler) Ownership(c *fiber.Ctx) error {
	userID, ok, err := requireFragmentUser(c)
	if !ok {
		return err
	}
	cardID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	card, err := h.cardService.GetCardByID(c.UserContext(), cardID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	tab, err := h.ownershipService.GetOwnershipTab(c.UserContext(), cardID, userID)
	if err != nil {
		configslog.Log.Error("Ownership fragment error", zap.Uint("cardID", cardID), zap.Uint("userID", userID), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/ownership", fiber.Map{
		"Card":       card,
		"Ownerships": tab.Ownerships,
		"Changes":    tab.Changes,
	})
}

// Add baskı için koleksiyon ekleme formunu döndürür.
func (h *ResultHandler) Add(c *fiber.Ctx) error {
	userID, ok, err := requireFragmentUser(c)
	if !ok {
		return err
	}
	printingID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	printing, err := h.cardService.GetPrintingByID(c.UserContext(), printingID)
	if err != nil {
		if errors.Is(err, services.ErrPrintingNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		configslog.Log.Error("Add fragment error", zap.Uint("printingID", printingID), zap.Uint("userID", userID), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/add", fiber.Map{
		"Printing": printing,
	})
}

// ChangeOwnership koleksiyon değişikliğini uygular ve JSON sonucu döndürür.
func (h *ResultHandler) ChangeOwnership(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"result": false, "error": "Giriş yapmalısınız"})
	}

	count, err := strconv.Atoi(c.FormValue("count"))
	if err != nil || count == 0 {
		return c.JSON(fiber.Map{"result": false, "error": "Geçersiz adet"})
	}
	localisationID, err := strconv.Atoi(c.FormValue("localisation"))
	if err != nil || localisationID <= 0 {
		return c.JSON(fiber.Map{"result": false, "error": "Geçersiz lokalizasyon"})
	}

	err = h.ownershipService.ApplyChange(c.UserContext(), userID, uint(localisationID), count)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLocalisationNotFound),
			errors.Is(err, services.ErrOwnershipBelowZero),
			errors.Is(err, services.ErrOwnershipInvalidInput):
			return c.JSON(fiber.Map{"result": false, "error": err.Error()})
		default:
			configslog.Log.Error("ChangeOwnership error",
				zap.Uint("userID", userID), zap.Int("localisationID", localisationID), zap.Error(err))
			return c.JSON(fiber.Map{"result": false, "error": "Değişiklik kaydedilemedi"})
		}
	}
	return c.JSON(fiber.Map{"result": true})
}

// OwnershipSummary kart başlığındaki sahiplik özetini döndürür.
func (h *ResultHandler) OwnershipSummary(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	cardID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	printingID, _ := strconv.Atoi(c.Query("printing"))

	card, err := h.cardService.GetCardByID(c.UserContext(), cardID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	var summary *services.OwnershipSummary
	if userID != 0 {
		summary, err = h.ownershipService.GetSummary(c.UserContext(), cardID, uint(printingID), userID)
		if err != nil {
			configslog.Log.Error("OwnershipSummary error", zap.Uint("cardID", cardID), zap.Error(err))
			return c.SendStatus(fiber.StatusInternalServerError)
		}
	}
	return renderer.RenderFragment(c, "website/fragments/ownership_summary", fiber.Map{
		"Card":    card,
		"Summary": summary,
	})
}

// SetSummary seçili baskının set özet sekmesini döndürür.
func (h *ResultHandler) SetSummary(c *fiber.Ctx) error {
	printingID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	printing, err := h.cardService.GetPrintingWithSetSiblings(c.UserContext(), printingID)
	if err != nil {
		if errors.Is(err, services.ErrPrintingNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/set_summary", fiber.Map{
		"Card":             printing.Card,
		"SelectedPrinting": printing,
	})
}

// Decks kartın kullanıcının destelerindeki kullanımını döndürür.
func (h *ResultHandler) Decks(c *fiber.Ctx) error {
	userID, ok, err := requireFragmentUser(c)
	if !ok {
		return err
	}
	cardID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	tab, err := h.deckService.GetDecksForCard(c.UserContext(), cardID, userID)
	if err != nil {
		configslog.Log.Error("Decks fragment error", zap.Uint("cardID", cardID), zap.Uint("userID", userID), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/decks", fiber.Map{
		"DeckCards": tab.DeckCards,
		"CardCount": tab.CardCount,
		"DeckCount": tab.DeckCount,
	})
}

// Links kartın dış bağlantılar sekmesini döndürür.
func (h *ResultHandler) Links(c *fiber.Ctx) error {
	cardID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	links, err := h.cardService.ExternalLinks(c.UserContext(), cardID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		configslog.Log.Error("Links fragment error", zap.Uint("cardID", cardID), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/links", fiber.Map{
		"Links": links,
	})
}

// Prices baskının fiyat sekmesini döndürür.
func (h *ResultHandler) Prices(c *fiber.Ctx) error {
	printingID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	printing, err := h.cardService.GetPrintingByID(c.UserContext(), printingID)
	if err != nil {
		if errors.Is(err, services.ErrPrintingNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	latest, err := h.priceService.GetLatestPrice(c.UserContext(), printingID)
	if err != nil {
		configslog.Log.Error("Prices fragment error", zap.Uint("printingID", printingID), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return renderer.RenderFragment(c, "website/fragments/prices", fiber.Map{
		"Printing":    printing,
		"LatestPrice": latest,
	})
}

// PriceJSON baskının fiyat geçmişini grafik verisi olarak döndürür.
func (h *ResultHandler) PriceJSON(c *fiber.Ctx) error {
	printingID, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID"})
	}
	series, err := h.priceService.GetPriceSeries(c.UserContext(), printingID)
	if err != nil {
		configslog.Log.Error("PriceJSON error", zap.Uint("printingID", printingID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Fiyat verisi alınamadı"})
	}
	return c.JSON(series)
}

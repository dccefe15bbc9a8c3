package handlers

import (
	"net/http"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"
	"kartoteka.link/pkg/queryparams"
	"kartoteka.link/pkg/renderer"
	"kartoteka.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// selectedTabCookie kullanıcının son seçtiği sekmeyi saklayan çerez.
const selectedTabCookie = "selected_tab"

// defaultTab hiçbir çerez yoksa açılan sekme.
const defaultTab = "details"

// PageHandler arama ve set sayfaları için handler.
type PageHandler struct {
	cardService services.ICardService
	setService  services.ISetService
}

// NewPageHandler yeni bir PageHandler örneği oluşturur.
func NewPageHandler() *PageHandler {
	return &PageHandler{
		cardService: services.NewCardService(),
		setService:  services.NewSetService(),
	}
}

// Index ana sayfayı (arama formu) gösterir.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	renderData := fiber.Map{"Title": "Kart Arama"}
	sets, err := h.setService.GetRecentSets(c.UserContext())
	if err != nil {
		configslog.Log.Warn("Index: güncel setler alınamadı", zap.Error(err))
	} else {
		renderData["RecentSets"] = sets
	}
	return renderer.Render(c, "website/index", "layouts/main_layout", renderData)
}

// NameSearch isimle kart arar ve sonuç sayfasını gösterir. Tek sonuç
// varsa şablon onu açılmış olarak işaretler.
func (h *PageHandler) NameSearch(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("NameSearch: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("name")
	}
	params.Validate()

	renderData := fiber.Map{
		"Title":       "Arama Sonuçları",
		"Params":      params,
		"SelectedTab": c.Cookies(selectedTabCookie, defaultTab),
	}

	result, err := h.cardService.SearchCardsByName(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("NameSearch error", zap.String("name", params.Name), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Arama sırasında bir hata oluştu."
		result = &queryparams.PaginatedResult{Data: []models.Card{}, Meta: queryparams.PaginationMeta{}}
	}
	renderData["Result"] = result
	if cards, ok := result.Data.([]models.Card); ok {
		renderData["AutoExpand"] = len(cards) == 1
	}

	return renderer.Render(c, "website/name_search", "layouts/main_layout", renderData, http.StatusOK)
}

// SetList tüm setleri ağaç halinde listeler.
func (h *PageHandler) SetList(c *fiber.Ctx) error {
	tree, err := h.setService.GetSetTree(c.UserContext())
	renderData := fiber.Map{
		"Title": "Setler",
		"Sets":  tree,
	}
	if err != nil {
		configslog.Log.Error("SetList error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Setler listelenirken bir hata oluştu."
	}
	return renderer.Render(c, "website/set_list", "layouts/main_layout", renderData, http.StatusOK)
}

// Autocomplete isim tamamlama önerilerini JSON döndürür.
func (h *PageHandler) Autocomplete(c *fiber.Ctx) error {
	entries, err := h.cardService.Autocomplete(c.UserContext(), c.Query("term"))
	if err != nil {
		configslog.Log.Error("Autocomplete error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON([]services.AutocompleteEntry{})
	}
	return c.JSON(entries)
}

package routes

import (
	website_handlers "kartoteka.link/handlers/website"

	"github.com/gofiber/fiber/v2"
)

// registerWebsiteRoutes arama sayfalarını ve sonuç sekmelerinin AJAX
// parça rotalarını kaydeder. Giriş gerektiren sekmeler middleware ile
// değil handler içinde denetlenir; parça istekleri yönlendirme yerine
// 401 gövdesi almalıdır.
func registerWebsiteRoutes(app *fiber.App) {
	pageHandler := website_handlers.NewPageHandler()
	resultHandler := website_handlers.NewResultHandler()

	app.Get("/", pageHandler.Index)
	app.Get("/name_search", pageHandler.NameSearch)
	app.Get("/set_list", pageHandler.SetList)
	app.Get("/autocomplete", pageHandler.Autocomplete)

	ajax := app.Group("/website/ajax")
	ajax.Get("/search_result_details/:id", resultHandler.Details)
	ajax.Get("/search_result_rulings/:id", resultHandler.Rulings)
	ajax.Get("/search_result_languages/:id", resultHandler.Languages)
	ajax.Get("/search_result_ownership/:id", resultHandler.Ownership)
	ajax.Get("/search_result_add/:id", resultHandler.Add)
	ajax.Get("/card_printing_image/:id", resultHandler.PrintingImage)
	ajax.Post("/change_card_ownership", resultHandler.ChangeOwnership)
	ajax.Get("/ownership_summary/:id", resultHandler.OwnershipSummary)
	ajax.Get("/search_result_set_summary/:id", resultHandler.SetSummary)
	ajax.Get("/search_result_decks/:id", resultHandler.Decks)
	ajax.Get("/search_result_links/:id", resultHandler.Links)
	ajax.Get("/search_result_prices/:id", resultHandler.Prices)
	ajax.Get("/search_result_price_json/:id", resultHandler.PriceJSON)
}

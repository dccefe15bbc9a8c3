package routes

import (
	website_handlers "kartoteka.link/handlers/website"
	"kartoteka.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerDeckRoutes(app *fiber.App) {
	deckHandler := website_handlers.NewDeckHandler()

	deckGroup := app.Group("/decks",
		middlewares.AuthMiddleware,   // 1. Giriş yapmış mı?
		middlewares.StatusMiddleware, // 2. Hesap aktif mi?
	)
	deckGroup.Get("/", deckHandler.ListDecks)
	deckGroup.Get("/stats", deckHandler.Stats)
	deckGroup.Post("/change_unused", deckHandler.RerollUnused)
	deckGroup.Get("/create", deckHandler.ShowCreateDeck)
	deckGroup.Post("/create", deckHandler.CreateDeck)
	deckGroup.Get("/update/:id", deckHandler.ShowUpdateDeck)
	deckGroup.Post("/update/:id", deckHandler.UpdateDeck)
	deckGroup.Post("/delete/:id", deckHandler.DeleteDeck)
	deckGroup.Get("/colour_weights/:id", deckHandler.ColourWeightsJSON)
	deckGroup.Get("/:id", deckHandler.ShowDeck)
}

package routes

import (
	"translator-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, pageHandler *handlers.PageHandler, translationHandler *handlers.TranslationHandler, historyHandler *handlers.HistoryHandler) {
	// Pages
	app.Get("/", pageHandler.Home)

	// Translation routes
	app.Post("/translate", translationHandler.Translate)
	app.Post("/detect", translationHandler.Detect)
	app.Get("/download/:id", translationHandler.Download)

	// History routes - replay, delete and clear
	history := app.Group("/history")
	{
		history.Get("/", historyHandler.Index)
		history.Post("/clear", historyHandler.Clear)
		history.Get("/:id", historyHandler.Show)
		history.Delete("/:id", historyHandler.Destroy)
	}

	api := app.Group("/api")
	{
		api.Get("/languages", translationHandler.Languages)
	}
}

package home

import (
	"github.com/go-chi/chi/v5"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
)

// SetupRoutes registers the upload feature routes.
func SetupRoutes(router chi.Router, app *common.App) {
	handlers := NewHandlers(app)

	router.Get("/", handlers.HomePage)
	router.Post("/upload", handlers.Upload)
	router.Post("/load", handlers.LoadExisting)
}

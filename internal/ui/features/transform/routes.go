package transform

import (
	"github.com/go-chi/chi/v5"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
)

// SetupRoutes registers the transform feature routes.
func SetupRoutes(router chi.Router, app *common.App) {
	handlers := NewHandlers(app)

	router.Get("/transform", handlers.TransformPage)
	router.Post("/transform", handlers.Apply)
}

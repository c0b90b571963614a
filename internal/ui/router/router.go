// Package router sets up HTTP routes for the UI server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/cleaning"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/export"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/home"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/summary"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/transform"
)

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(router chi.Router, app *common.App) {
	setupUpdates(router, app)

	home.SetupRoutes(router, app)
	summary.SetupRoutes(router, app)
	cleaning.SetupRoutes(router, app)
	transform.SetupRoutes(router, app)
	export.SetupRoutes(router, app)
}

// setupUpdates registers the SSE endpoint that reloads connected tabs
// when the dataset changes elsewhere (another tab, or a file dropped
// into the watched data directory).
func setupUpdates(router chi.Router, app *common.App) {
	router.Get("/updates", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		ch, cancel := app.Notifier.Subscribe()
		defer cancel()

		for {
			select {
			case <-r.Context().Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				if err := sse.ExecuteScript("window.location.reload()"); err != nil {
					return
				}
			}
		}
	})
}

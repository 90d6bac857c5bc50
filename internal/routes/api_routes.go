package routes

import (
	"github.com/mariuschr/vinlookup-open/internal/api"
	"github.com/mariuschr/vinlookup-open/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the dispatch surface and its side routes.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {

	r.Group(func(apiGroup chi.Router) {
		apiGroup.Use(middleware.RateLimitMiddleware)

		// All query actions share one dispatch endpoint; clients select
		// behavior with the action parameter.
		apiGroup.Get("/api/data", handlers.Dispatch())

		apiGroup.Post("/api/salestext", handlers.SalesTextHandler())
	})

	// Signed document downloads issued by the tuv action.
	r.Get("/files/download", api.DownloadDocumentHandler(deps))
}

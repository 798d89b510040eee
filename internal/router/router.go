// Package router sets up all HTTP routes and middleware chains for the
// extension catalog service. The JSON API lives under /api; everything
// else is the embedded catalog UI.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"extstore/internal/handlers"
	"extstore/internal/middleware"
	"extstore/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter may be nil to disable rate limiting.
func New(catalog *handlers.Catalog, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/extensions", func(r chi.Router) {
			r.Get("/", catalog.ExtensionsList)
			r.Post("/", catalog.ExtensionCreate)
			r.Get("/search", catalog.ExtensionsSearch)
			r.Get("/{id}", catalog.ExtensionGet)
			r.Get("/{id}/manifest", catalog.ExtensionManifest)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", catalog.CategoriesList)
			r.Post("/", catalog.CategoryCreate)
			r.Get("/{categoryId}/extensions", catalog.CategoryExtensions)
		})
	})

	// Static catalog UI from the embedded filesystem.
	static, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/*", http.FileServer(http.FS(static)))
	}

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

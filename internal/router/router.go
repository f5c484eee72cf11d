package router

import (
	"net/http"

	"stockroom-api/internal/handler"
	"stockroom-api/internal/middleware"
	"stockroom-api/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler          *handler.Handler
	InventoryHandler *handler.InventoryHandler
	AuthHandler      *handler.AuthHandler
	AuthMiddleware   func(http.Handler) http.Handler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Token"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// PUBLIC routes (no auth required)
	if cfg.Handler != nil {
		r.Get("/", cfg.Handler.Root)
		r.Get("/api/status", cfg.Handler.Status)
	}

	if cfg.AuthHandler != nil {
		r.Route("/api/auth", func(r chi.Router) {
			r.Post("/token", cfg.AuthHandler.GenerateToken)
			r.Post("/revoke", cfg.AuthHandler.RevokeToken)
		})
	}

	// Embedded single-page UI - public; it gates itself on 401 responses.
	fileServer := http.FileServer(http.FS(web.StaticFS()))
	r.Handle("/app/*", http.StripPrefix("/app/", fileServer))
	r.Get("/app", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/app/", http.StatusMovedPermanently)
	})

	// AUTHENTICATED routes: every request passes the gate first.
	r.Group(func(r chi.Router) {
		if cfg.AuthMiddleware != nil {
			r.Use(cfg.AuthMiddleware)
		}

		if cfg.InventoryHandler != nil {
			r.Route("/api/inventory", func(r chi.Router) {
				r.Get("/", cfg.InventoryHandler.List)
				r.Post("/", cfg.InventoryHandler.Create)
				r.Get("/{id}", cfg.InventoryHandler.Get)
				r.Put("/{id}", cfg.InventoryHandler.Update)
				r.Delete("/{id}", cfg.InventoryHandler.Delete)
			})
		}
	})

	return r
}

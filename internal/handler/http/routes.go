package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. A positive requestTimeout bounds every request.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	// device-authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.signResponse).Get("/api/users/", h.listUsers)
		r.Post("/api/users/", h.provisionUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRouter registers middleware and routes on r.
func SetupRouter(r chi.Router, s *Server) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(s.logger))
	r.Use(LimitBody(MaxBodyBytes))

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/styles", s.handleStyles)

	r.Route("/boards", func(r chi.Router) {
		r.Post("/", s.handleGenerate)
		r.Get("/{seed}", s.handleBoard)
	})
	r.Post("/measure", s.handleMeasure)
}

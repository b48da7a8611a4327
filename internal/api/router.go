package api

import (
	_ "fxswap/docs"
	"fxswap/internal/session/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(sessionHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/convert", sessionHandler.Convert)

		r.Post("/sessions", sessionHandler.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Delete("/", sessionHandler.CloseSession)
			r.Get("/currencies", sessionHandler.ListCurrencies)
			r.Put("/from", sessionHandler.SelectFrom)
			r.Put("/to", sessionHandler.SelectTo)
			r.Put("/amount", sessionHandler.EditAmount)
			r.Post("/swap", sessionHandler.Swap)
		})
	})
	return router
}

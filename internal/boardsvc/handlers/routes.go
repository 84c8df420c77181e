package handlers

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {

		r.Route("/board", func(r chi.Router) {
			r.Get("/", h.GetBoard)
			r.Put("/draft", h.UpdateDraft)
			r.Post("/games", h.CreateGame)
			r.Post("/games/{gameID}/join", h.BeginJoin)
			r.Post("/join", h.ConfirmJoin)
		})

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/health", h.HealthHandler)
		})
	})
}

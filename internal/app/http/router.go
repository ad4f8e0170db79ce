package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"floraconcierge/backend/internal/app/config"
	"floraconcierge/backend/internal/app/http/handlers"
	"floraconcierge/backend/internal/app/http/middleware"
	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/domain/location"
	"floraconcierge/backend/internal/domain/session"
)

func NewRouter(cfg config.Config, sessions *session.Manager, cat catalog.Provider, loc location.Provider) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(sessions, cat, loc, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/sessions", h.CreateSession)

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Post("/actions", h.ApplyAction)
			r.Put("/preferences", h.UpdatePreferences)
			r.Post("/kiosk", h.SetKiosk)
			r.Post("/location", h.ResolveLocation)

			r.Post("/chat", h.ChatMessage)
			r.Get("/chat", h.ChatHistory)
			r.Get("/chat/ws", h.ChatSocket)

			r.Post("/suggestions", h.GenerateSuggestions)
			r.Get("/suggestions", h.ListSuggestions)

			r.Get("/plants", h.ListPlants)
			r.Get("/plants/{plantID}", h.GetPlant)

			r.Post("/favorites/{plantID}", h.ToggleFavorite)
			r.Post("/cart", h.UpdateCart)
			r.Post("/cart/quote", h.CartQuote)
		})
	})

	return r
}

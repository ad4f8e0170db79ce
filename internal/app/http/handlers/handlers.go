package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"floraconcierge/backend/internal/app/config"
	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/domain/location"
	"floraconcierge/backend/internal/domain/session"
)

type Handlers struct {
	Sessions *session.Manager
	Catalog  catalog.Provider
	Location location.Provider
	Cfg      config.Config

	validate *validator.Validate
}

func New(sessions *session.Manager, cat catalog.Provider, loc location.Provider, cfg config.Config) *Handlers {
	return &Handlers{
		Sessions: sessions,
		Catalog:  cat,
		Location: loc,
		Cfg:      cfg,
		validate: validator.New(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http encode response failed: %v", err)
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

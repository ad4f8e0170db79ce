package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListPlants returns the tenant's full catalog, unscored.
func (h *Handlers) ListPlants(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	plants, err := h.Catalog.PlantsByTenant(r.Context(), s.Tenant.ID)
	if err != nil {
		log.Printf("catalog session=%s load failed: %v", s.ID, err)
		writeError(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plants": plants})
}

// GetPlant returns one catalog entry by id.
func (h *Handlers) GetPlant(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	plantID := chi.URLParam(r, "plantID")
	plants, err := h.Catalog.PlantsByTenant(r.Context(), s.Tenant.ID)
	if err != nil {
		writeError(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	for _, p := range plants {
		if p.ID == plantID {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "plant not found")
}

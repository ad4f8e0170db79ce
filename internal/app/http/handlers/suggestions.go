package handlers

import (
	"errors"
	"log"
	"net/http"

	"floraconcierge/backend/internal/domain/prefs"
	"floraconcierge/backend/internal/domain/suggest"
)

// GenerateSuggestions runs the scoring pass over the tenant catalog with the
// session's current preferences, exactly as stated: unset factors contribute
// nothing. Only the chat flow hands off a fully defaulted record. A call
// superseded by a newer one answers 409; a failed pass answers 502 with a
// retryable flag and no partial results.
func (h *Handlers) GenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	s.Touch()

	results, err := s.Suggestions().Generate(r.Context(), s.Preferences(), s.Tenant.ID)
	if err != nil {
		if errors.Is(err, suggest.ErrSuperseded) {
			writeError(w, http.StatusConflict, "superseded by a newer request")
			return
		}
		log.Printf("suggestions session=%s tenant=%s generate failed: %v", s.ID, s.Tenant.ID, err)
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:     "could not generate suggestions, try again",
			Retryable: true,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// ListSuggestions filters and sorts the cached result set without re-running
// the scoring pass. ?category= narrows to one category, ?sort= is one of
// relevance, price-asc, price-desc, name.
func (h *Handlers) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	s.Touch()

	svc := s.Suggestions()
	if sortParam := r.URL.Query().Get("sort"); sortParam != "" {
		key, err := suggest.ParseSortKey(sortParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		svc.SortBy(key)
	}

	results := svc.FilterByCategory(prefs.Category(r.URL.Query().Get("category")))
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

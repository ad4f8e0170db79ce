package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"floraconcierge/backend/internal/domain/location"
	"floraconcierge/backend/internal/domain/prefs"
	"floraconcierge/backend/internal/domain/session"
	"floraconcierge/backend/internal/domain/tenant"
)

type createSessionRequest struct {
	// SessionID restores a previously persisted session (kiosk devices keep
	// theirs across restarts). Empty starts fresh.
	SessionID string `json:"session_id,omitempty"`
}

// CreateSession resolves the tenant from the request (?tenant= wins over the
// hostname subdomain) and the kiosk flag from ?kiosk=true, then starts or
// restores a session.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request")
			return
		}
	}

	t := tenant.Resolve(r.URL.Query(), r.Host)
	kiosk := tenant.KioskRequested(r.URL.Query())

	s, err := h.Sessions.Create(r.Context(), t, kiosk, req.SessionID)
	if err != nil {
		log.Printf("session create tenant=%s failed: %v", t.ID, err)
		writeError(w, http.StatusInternalServerError, "session create failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"session": s.Snapshot(),
		"tenant":  t,
	})
}

func (h *Handlers) session(w http.ResponseWriter, r *http.Request) *session.Session {
	s, err := h.Sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil
	}
	return s
}

func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	s.Touch()
	writeJSON(w, http.StatusOK, s.Snapshot())
}

type actionRequest struct {
	Action string `json:"action" validate:"required"`
}

// ApplyAction runs one state-machine action (start, choose-chat, choose-quiz,
// next, back, finish, start-over, open-detail, open-favorites, open-cart,
// close).
func (h *Handlers) ApplyAction(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := s.Apply(r.Context(), session.Action(req.Action))
	if err != nil {
		var te session.ErrTransition
		if errors.As(err, &te) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"view": view})
}

type preferencesRequest struct {
	Environment *string            `json:"environment,omitempty" validate:"omitempty,oneof=indoor outdoor balcony garden office bathroom kitchen"`
	CareLevel   *string            `json:"care_level,omitempty" validate:"omitempty,oneof=beginner easy moderate advanced expert"`
	PetFriendly *bool              `json:"pet_friendly,omitempty"`
	Budget      *prefs.BudgetRange `json:"budget,omitempty"`
	Categories  []string           `json:"categories,omitempty" validate:"omitempty,dive,oneof=flowers succulents trees foliage herbs cacti orchids bonsai"`
	City        string             `json:"city,omitempty"`
	State       string             `json:"state,omitempty"`
}

// UpdatePreferences merges a partial preference payload into the session.
// The quiz wizard steps all post here; unset fields never clobber earlier
// answers.
func (h *Handlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Budget != nil && req.Budget.Min > req.Budget.Max {
		writeError(w, http.StatusBadRequest, "budget min must not exceed max")
		return
	}

	var p prefs.Preferences
	if req.Environment != nil {
		p.Environment = prefs.EnvironmentPtr(prefs.Environment(*req.Environment))
	}
	if req.CareLevel != nil {
		p.CareLevel = prefs.CareLevelPtr(prefs.CareLevel(*req.CareLevel))
	}
	p.PetFriendly = req.PetFriendly
	p.Budget = req.Budget
	for _, c := range req.Categories {
		p.Categories = append(p.Categories, prefs.Category(c))
	}
	p.City = req.City
	p.State = req.State

	merged := s.MergePreferences(r.Context(), p)
	writeJSON(w, http.StatusOK, merged)
}

type kioskRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *Handlers) SetKiosk(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var req kioskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.SetKiosk(req.Enabled)
	writeJSON(w, http.StatusOK, s.Snapshot())
}

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ResolveLocation turns device coordinates into a city and merges it into
// the preferences. Location failures are never fatal: the client gets the
// error kind and carries on without a location.
func (h *Handlers) ResolveLocation(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	place, err := h.Location.Resolve(r.Context(), req.Lat, req.Lng)
	if err != nil {
		log.Printf("session id=%s location lookup failed: %v", s.ID, err)
		writeJSON(w, http.StatusOK, map[string]any{"error": locationErrorKind(err)})
		return
	}
	s.MergePreferences(r.Context(), prefs.Preferences{City: place.City, State: place.State})
	writeJSON(w, http.StatusOK, place)
}

func locationErrorKind(err error) string {
	switch {
	case errors.Is(err, location.ErrPermissionDenied):
		return "permission-denied"
	case errors.Is(err, location.ErrTimeout):
		return "timeout"
	case errors.Is(err, location.ErrUnsupported):
		return "unsupported"
	default:
		return "unavailable"
	}
}

// ToggleFavorite flips a plant's favorite status.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	plantID := chi.URLParam(r, "plantID")
	added := s.ToggleFavorite(r.Context(), plantID)
	writeJSON(w, http.StatusOK, map[string]any{
		"plant_id":  plantID,
		"favorite":  added,
		"favorites": s.Favorites(),
	})
}

type cartRequest struct {
	PlantID  string `json:"plant_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// UpdateCart sets the quantity for one cart line; zero removes it.
func (h *Handlers) UpdateCart(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cart := s.SetCartQuantity(r.Context(), req.PlantID, req.Quantity)
	writeJSON(w, http.StatusOK, map[string]any{"cart": cart})
}

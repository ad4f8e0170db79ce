package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"floraconcierge/backend/internal/domain/chat"
	"floraconcierge/backend/internal/domain/session"
)

type chatRequest struct {
	Message string `json:"message" validate:"required"`
	// Coordinates accompany the "use my location" quick reply; zero values
	// mean the device could not provide a position.
	Lat float64 `json:"lat,omitempty"`
	Lng float64 `json:"lng,omitempty"`
}

type chatResponse struct {
	Replies []chat.Message `json:"replies"`
	Step    chat.Step      `json:"step,omitempty"`
	Done    bool           `json:"done,omitempty"`
}

// ChatMessage feeds one user message to the scripted dialogue. The session
// must be in the chat view.
func (h *Handlers) ChatMessage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.ChatHandle(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, session.ErrWrongView) {
			writeError(w, http.StatusConflict, "chat is not open")
			return
		}
		writeError(w, http.StatusInternalServerError, "chat failed")
		return
	}

	if out.NeedsLocation {
		out = h.resolveChatLocation(r, s, req.Lat, req.Lng)
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Replies: out.Replies,
		Step:    s.Snapshot().ChatStep,
		Done:    out.Done,
	})
}

// resolveChatLocation serves the "use my location" quick reply. Any location
// failure degrades to asking for the city by name.
func (h *Handlers) resolveChatLocation(r *http.Request, s *session.Session, lat, lng float64) chat.Outcome {
	place, err := h.Location.Resolve(r.Context(), lat, lng)
	if err != nil {
		log.Printf("chat session=%s location failed: %v", s.ID, err)
		out, _ := s.ChatProvideCity(r.Context(), "", false)
		return out
	}
	out, _ := s.ChatProvideCity(r.Context(), place.City, true)
	return out
}

// ChatHistory returns the dialogue so far.
func (h *Handlers) ChatHistory(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	messages := s.ChatMessages()
	if messages == nil {
		writeError(w, http.StatusConflict, "chat is not open")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

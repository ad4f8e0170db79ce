package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"floraconcierge/backend/internal/domain/chat"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Kiosk clients connect from file:// and store subdomains.
		return true
	},
}

type wsInbound struct {
	Message string  `json:"message"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

type wsOutbound struct {
	Type    string        `json:"type"` // "typing" | "message" | "done" | "error"
	Message *chat.Message `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// ChatSocket mirrors ChatMessage over a websocket. The typing delay hint is
// honored server-side: the client sees a typing event, then the message after
// the delay, like talking to a human clerk.
func (h *Handlers) ChatSocket(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat ws session=%s upgrade failed: %v", s.ID, err)
		return
	}
	defer conn.Close()
	log.Printf("chat ws session=%s connected", s.ID)

	// Replay history so reconnecting clients catch up.
	for _, m := range s.ChatMessages() {
		msg := m
		if err := conn.WriteJSON(wsOutbound{Type: "message", Message: &msg}); err != nil {
			return
		}
	}

	for {
		var in wsInbound
		if err := conn.ReadJSON(&in); err != nil {
			log.Printf("chat ws session=%s closed: %v", s.ID, err)
			return
		}

		out, err := s.ChatHandle(r.Context(), in.Message)
		if err != nil {
			if werr := conn.WriteJSON(wsOutbound{Type: "error", Error: "chat is not open"}); werr != nil {
				return
			}
			continue
		}
		if out.NeedsLocation {
			out = h.resolveChatLocation(r, s, in.Lat, in.Lng)
		}

		for _, m := range out.Replies {
			msg := m
			if msg.Sender == chat.SenderSystem && msg.TypingMillis > 0 {
				if err := conn.WriteJSON(wsOutbound{Type: "typing"}); err != nil {
					return
				}
				time.Sleep(time.Duration(msg.TypingMillis) * time.Millisecond)
			}
			if err := conn.WriteJSON(wsOutbound{Type: "message", Message: &msg}); err != nil {
				return
			}
		}
		if out.Done {
			if err := conn.WriteJSON(wsOutbound{Type: "done"}); err != nil {
				return
			}
			return
		}
	}
}

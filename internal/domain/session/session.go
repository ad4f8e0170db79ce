package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/domain/chat"
	"floraconcierge/backend/internal/domain/prefs"
	"floraconcierge/backend/internal/domain/suggest"
	"floraconcierge/backend/internal/domain/tenant"
	"floraconcierge/backend/internal/infra/events"
	"floraconcierge/backend/internal/infra/store"
)

// ErrNotFound reports an unknown session id.
var ErrNotFound = errors.New("session: not found")

// ErrWrongView reports an operation that requires a view the session is not
// in.
var ErrWrongView = errors.New("session: operation not available in current view")

// Session is the single owner of one visitor's view state. Every mutation
// goes through its methods under mu, which preserves the single-writer
// guarantee even with concurrent HTTP handlers and the idle timer.
type Session struct {
	ID     string
	Tenant tenant.Config

	mu        sync.Mutex
	view      View
	kiosk     bool
	prefs     prefs.Preferences
	favorites []string
	cart      []store.CartItem
	chat      *chat.Session
	suggest   *suggest.Service
	idle      *IdleWatcher

	store       store.Store
	events      *events.Producer
	idleTimeout time.Duration
	now         func() time.Time
}

// Snapshot is the wire representation of session state.
type Snapshot struct {
	ID          string            `json:"id"`
	TenantID    string            `json:"tenant_id"`
	View        View              `json:"view"`
	KioskMode   bool              `json:"kiosk_mode"`
	Idle        bool              `json:"idle"`
	Preferences prefs.Preferences `json:"preferences"`
	Favorites   []string          `json:"favorites"`
	Cart        []store.CartItem  `json:"cart"`
	ChatStep    chat.Step         `json:"chat_step,omitempty"`
}

// Manager creates and looks up sessions. One Session exists per id.
type Manager struct {
	store       store.Store
	catalog     catalog.Provider
	events      *events.Producer
	latency     time.Duration
	idleTimeout time.Duration
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(st store.Store, cat catalog.Provider, ev *events.Producer, latency, idleTimeout time.Duration) *Manager {
	return &Manager{
		store:       st,
		catalog:     cat,
		events:      ev,
		latency:     latency,
		idleTimeout: idleTimeout,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
}

// Create starts a session for a tenant. When id names a previously persisted
// session its preferences, favorites and cart are restored; missing or
// corrupt data falls back to defaults silently. The view always starts at
// landing.
func (m *Manager) Create(ctx context.Context, t tenant.Config, kiosk bool, id string) (*Session, error) {
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	if existing, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	m.mu.Unlock()

	s := &Session{
		ID:          id,
		Tenant:      t,
		view:        ViewLanding,
		store:       m.store,
		events:      m.events,
		idleTimeout: m.idleTimeout,
		now:         m.now,
		suggest:     suggest.New(m.catalog, m.latency),
	}

	rec, err := m.store.Load(ctx, t.ID, id)
	switch {
	case err == nil:
		s.prefs = rec.Preferences
		s.favorites = rec.Favorites
		s.cart = rec.Cart
	case errors.Is(err, store.ErrNotFound):
		// Fresh session.
	default:
		log.Printf("session id=%s tenant=%s state load failed, using defaults: %v", id, t.ID, err)
	}

	if kiosk && t.Features.EnableKioskMode {
		s.kiosk = true
		s.idle = NewIdleWatcher(m.idleTimeout, s.handleIdle)
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.events.Publish(ctx, events.Event{Type: "session_started", Tenant: t.ID, Session: id, View: string(ViewLanding)})
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:          s.ID,
		TenantID:    s.Tenant.ID,
		View:        s.view,
		KioskMode:   s.kiosk,
		Preferences: s.prefs,
		Favorites:   append([]string(nil), s.favorites...),
		Cart:        append([]store.CartItem(nil), s.cart...),
	}
	if s.idle != nil {
		snap.Idle = s.idle.Idle()
	}
	if s.chat != nil {
		snap.ChatStep = s.chat.Step
	}
	return snap
}

// View returns the current view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Suggestions exposes the session's ranking service.
func (s *Session) Suggestions() *suggest.Service { return s.suggest }

// Preferences returns a copy of the current preferences.
func (s *Session) Preferences() prefs.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Apply runs one state-machine action. Start-over clears preferences but
// keeps favorites and cart; entering the chat view opens a fresh dialogue,
// leaving it discards the dialogue.
func (s *Session) Apply(ctx context.Context, action Action) (View, error) {
	s.mu.Lock()
	s.touchLocked()

	next, err := Transition(s.view, action, len(s.prefs.Categories) > 0)
	if err != nil {
		s.mu.Unlock()
		return s.View(), err
	}

	prev := s.view
	s.view = next

	persist := false
	switch {
	case action == ActionStartOver:
		s.prefs = prefs.Preferences{}
		persist = true
	case next == ViewChat && prev != ViewChat:
		s.chat = chat.NewSession(s.Tenant.Name, s.now)
	case prev == ViewChat && next != ViewChat:
		// Chat history is not durable; only the preferences it wrote are.
		s.chat = nil
	}

	if persist {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	s.events.Publish(ctx, events.Event{Type: "view_changed", Tenant: s.Tenant.ID, Session: s.ID, View: string(next)})
	return next, nil
}

// MergePreferences unions partial preferences into the session and persists.
func (s *Session) MergePreferences(ctx context.Context, p prefs.Preferences) prefs.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.prefs = s.prefs.Merge(p)
	s.persistLocked(ctx)
	return s.prefs
}

// ChatMessages returns the dialogue history, or nil outside the chat view.
func (s *Session) ChatMessages() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chat == nil {
		return nil
	}
	return append([]chat.Message(nil), s.chat.Messages...)
}

// ChatHandle feeds one message to the dialogue. When the flow completes the
// defaulted preferences are merged and the view advances to results.
func (s *Session) ChatHandle(ctx context.Context, input string) (chat.Outcome, error) {
	s.mu.Lock()
	if s.view != ViewChat || s.chat == nil {
		s.mu.Unlock()
		return chat.Outcome{}, fmt.Errorf("%w: chat", ErrWrongView)
	}
	s.touchLocked()
	out := s.chat.Handle(input)
	s.finishChatLocked(ctx, &out)
	s.mu.Unlock()

	if out.Done {
		s.events.Publish(ctx, events.Event{Type: "view_changed", Tenant: s.Tenant.ID, Session: s.ID, View: string(ViewResults)})
	}
	return out, nil
}

// ChatProvideCity resumes the dialogue after a location lookup; ok=false
// reports a lookup failure, which degrades to asking for the city by name.
func (s *Session) ChatProvideCity(ctx context.Context, city string, ok bool) (chat.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewChat || s.chat == nil {
		return chat.Outcome{}, fmt.Errorf("%w: chat", ErrWrongView)
	}
	s.touchLocked()
	var out chat.Outcome
	if ok {
		out = s.chat.ProvideCity(city)
	} else {
		out = s.chat.ProvideCityFailed()
	}
	s.finishChatLocked(ctx, &out)
	return out, nil
}

// finishChatLocked applies the durable side of a chat outcome. Callers hold
// s.mu.
func (s *Session) finishChatLocked(ctx context.Context, out *chat.Outcome) {
	if !out.Done {
		return
	}
	s.prefs = s.prefs.Merge(s.chat.Prefs)
	s.view = ViewResults
	s.chat = nil
	s.persistLocked(ctx)
}

// ToggleFavorite adds or removes a plant id and reports whether it is now a
// favorite.
func (s *Session) ToggleFavorite(ctx context.Context, plantID string) bool {
	s.mu.Lock()
	s.touchLocked()
	added := true
	next := s.favorites[:0]
	for _, id := range s.favorites {
		if id == plantID {
			added = false
			continue
		}
		next = append(next, id)
	}
	if added {
		next = append(next, plantID)
	}
	s.favorites = next
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.events.Publish(ctx, events.Event{Type: "favorite_toggled", Tenant: s.Tenant.ID, Session: s.ID})
	return added
}

// SetCartQuantity sets the quantity for a plant; zero or less removes the
// line.
func (s *Session) SetCartQuantity(ctx context.Context, plantID string, quantity int) []store.CartItem {
	s.mu.Lock()
	s.touchLocked()
	next := s.cart[:0]
	updated := false
	for _, item := range s.cart {
		if item.PlantID == plantID {
			updated = true
			if quantity > 0 {
				item.Quantity = quantity
				next = append(next, item)
			}
			continue
		}
		next = append(next, item)
	}
	if !updated && quantity > 0 {
		next = append(next, store.CartItem{PlantID: plantID, Quantity: quantity})
	}
	s.cart = next
	out := append([]store.CartItem(nil), s.cart...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.events.Publish(ctx, events.Event{Type: "cart_updated", Tenant: s.Tenant.ID, Session: s.ID})
	return out
}

// Cart returns a copy of the cart.
func (s *Session) Cart() []store.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]store.CartItem(nil), s.cart...)
}

// Favorites returns a copy of the favorites list.
func (s *Session) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.favorites...)
}

// SetKiosk toggles kiosk mode. Enabling arms the idle watcher; disabling
// tears it down so no timer survives the toggle. The flag itself is not
// persisted.
func (s *Session) SetKiosk(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kiosk == enabled {
		return
	}
	s.kiosk = enabled
	if enabled {
		s.idle = NewIdleWatcher(s.idleTimeout, s.handleIdle)
		return
	}
	if s.idle != nil {
		s.idle.Stop()
		s.idle = nil
	}
}

// Touch records input activity for the kiosk idle watcher.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
}

func (s *Session) touchLocked() {
	if s.idle != nil {
		s.idle.Touch()
	}
}

// handleIdle returns an unattended kiosk to the attract screen. Favorites and
// cart stay; a passer-by can pick the session back up.
func (s *Session) handleIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewLanding
	log.Printf("session id=%s tenant=%s idle timeout, back to landing", s.ID, s.Tenant.ID)
}

// persistLocked mirrors preferences, favorites and cart to the store.
// Write failures are logged, never surfaced: the in-memory session remains
// authoritative.
func (s *Session) persistLocked(ctx context.Context) {
	rec := store.Record{
		Preferences: s.prefs,
		Favorites:   append([]string(nil), s.favorites...),
		Cart:        append([]store.CartItem(nil), s.cart...),
	}
	if err := s.store.Save(ctx, s.Tenant.ID, s.ID, rec); err != nil {
		log.Printf("session id=%s tenant=%s persist failed: %v", s.ID, s.Tenant.ID, err)
	}
}

package session

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/domain/prefs"
	"floraconcierge/backend/internal/domain/tenant"
	"floraconcierge/backend/internal/infra/store"
)

func newTestManager(st store.Store) *Manager {
	if st == nil {
		st = store.NewMemory()
	}
	return NewManager(st, catalog.NewMemoryProvider(nil), nil, 0, 0)
}

func quizToResults(t *testing.T, s *Session) {
	t.Helper()
	ctx := context.Background()
	for _, a := range []Action{ActionStart, ActionChooseQuiz, ActionNext, ActionNext, ActionNext} {
		if _, err := s.Apply(ctx, a); err != nil {
			t.Fatalf("apply %s: %v", a, err)
		}
	}
	s.MergePreferences(ctx, prefs.Preferences{Categories: []prefs.Category{prefs.CatFoliage}})
	if _, err := s.Apply(ctx, ActionFinish); err != nil {
		t.Fatalf("apply finish: %v", err)
	}
}

func TestStartOverKeepsFavoritesAndCart(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	s, err := m.Create(ctx, tenant.ByID("default"), false, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	quizToResults(t, s)
	s.ToggleFavorite(ctx, "monstera-deliciosa")
	s.SetCartQuantity(ctx, "echeveria-elegans", 2)

	view, err := s.Apply(ctx, ActionStartOver)
	if err != nil {
		t.Fatalf("start-over: %v", err)
	}
	if view != ViewLanding {
		t.Errorf("view = %s, want landing", view)
	}

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Preferences, prefs.Preferences{}) {
		t.Errorf("Preferences = %+v, want cleared", snap.Preferences)
	}
	if !reflect.DeepEqual(snap.Favorites, []string{"monstera-deliciosa"}) {
		t.Errorf("Favorites = %v, want kept", snap.Favorites)
	}
	if !reflect.DeepEqual(snap.Cart, []store.CartItem{{PlantID: "echeveria-elegans", Quantity: 2}}) {
		t.Errorf("Cart = %v, want kept", snap.Cart)
	}
}

func TestCreateRestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	m := newTestManager(st)
	s, err := m.Create(ctx, tenant.ByID("jardim-encantado"), false, "restored-session")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	quizToResults(t, s)
	s.ToggleFavorite(ctx, "lavanda")
	s.SetCartQuantity(ctx, "manjericao", 3)

	// A fresh manager simulates a process restart over the same store.
	m2 := newTestManager(st)
	s2, err := m2.Create(ctx, tenant.ByID("jardim-encantado"), false, "restored-session")
	if err != nil {
		t.Fatalf("re-create: %v", err)
	}

	snap := s2.Snapshot()
	if snap.View != ViewLanding {
		t.Errorf("View = %s, want landing on restore", snap.View)
	}
	if !snap.Preferences.HasCategory(prefs.CatFoliage) {
		t.Errorf("Preferences = %+v, want foliage category restored", snap.Preferences)
	}
	if !reflect.DeepEqual(snap.Favorites, []string{"lavanda"}) {
		t.Errorf("Favorites = %v, want [lavanda]", snap.Favorites)
	}
	if !reflect.DeepEqual(snap.Cart, []store.CartItem{{PlantID: "manjericao", Quantity: 3}}) {
		t.Errorf("Cart = %v, want restored", snap.Cart)
	}
}

func TestCreateCorruptStateFallsBackToSplitKeys(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	m := newTestManager(st)
	s, err := m.Create(ctx, tenant.ByID("default"), false, "corrupt-session")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	quizToResults(t, s)
	s.ToggleFavorite(ctx, "rosa-do-deserto")
	st.Corrupt("default", "corrupt-session")

	m2 := newTestManager(st)
	s2, err := m2.Create(ctx, tenant.ByID("default"), false, "corrupt-session")
	if err != nil {
		t.Fatalf("re-create after corruption: %v", err)
	}

	snap := s2.Snapshot()
	if !reflect.DeepEqual(snap.Favorites, []string{"rosa-do-deserto"}) {
		t.Errorf("Favorites = %v, want recovered from split key", snap.Favorites)
	}
	// The combined record carried the preferences; corruption loses them.
	if len(snap.Preferences.Categories) != 0 {
		t.Errorf("Preferences = %+v, want defaults after corruption", snap.Preferences)
	}
}

func TestCreateUnknownIDStartsFresh(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	s, err := m.Create(ctx, tenant.ByID("default"), false, "never-seen")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	snap := s.Snapshot()
	if snap.View != ViewLanding || len(snap.Favorites) != 0 || len(snap.Cart) != 0 {
		t.Errorf("snapshot = %+v, want pristine session", snap)
	}
}

func TestManagerGet(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	s, err := m.Create(ctx, tenant.ByID("default"), false, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Errorf("Get(%s) = (%v, %v), want the created session", s.ID, got, err)
	}
	if _, err := m.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestApplyIllegalActionKeepsView(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	s, _ := m.Create(ctx, tenant.ByID("default"), false, "")

	_, err := s.Apply(ctx, ActionNext)
	var te ErrTransition
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want ErrTransition", err)
	}
	if v := s.View(); v != ViewLanding {
		t.Errorf("view = %s, want landing unchanged", v)
	}
}

func TestChatHandoffMergesAndMovesToResults(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	s, _ := m.Create(ctx, tenant.ByID("default"), false, "")

	if _, err := s.Apply(ctx, ActionStart); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Apply(ctx, ActionChooseChat); err != nil {
		t.Fatalf("choose-chat: %v", err)
	}
	if msgs := s.ChatMessages(); len(msgs) == 0 {
		t.Fatal("chat opened without a greeting")
	}

	out, err := s.ChatHandle(ctx, "skip")
	if err != nil {
		t.Fatalf("chat handle: %v", err)
	}
	if !out.Done {
		t.Fatal("Done = false after skipping the flow")
	}

	snap := s.Snapshot()
	if snap.View != ViewResults {
		t.Errorf("View = %s, want results", snap.View)
	}
	if snap.Preferences.Environment == nil || *snap.Preferences.Environment != prefs.EnvIndoor {
		t.Errorf("Environment = %v, want indoor default from handoff", snap.Preferences.Environment)
	}
	if s.ChatMessages() != nil {
		t.Error("chat history survived the handoff")
	}

	// The dialogue is gone; further chat calls are rejected.
	if _, err := s.ChatHandle(ctx, "hello"); !errors.Is(err, ErrWrongView) {
		t.Errorf("chat after handoff error = %v, want ErrWrongView", err)
	}
}

func TestChatOutsideChatView(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	s, _ := m.Create(ctx, tenant.ByID("default"), false, "")

	if _, err := s.ChatHandle(ctx, "oi"); !errors.Is(err, ErrWrongView) {
		t.Errorf("error = %v, want ErrWrongView", err)
	}
	if _, err := s.ChatProvideCity(ctx, "Santos", true); !errors.Is(err, ErrWrongView) {
		t.Errorf("ChatProvideCity error = %v, want ErrWrongView", err)
	}
}

func TestLeavingChatDiscardsDialogue(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	s, _ := m.Create(ctx, tenant.ByID("default"), false, "")

	s.Apply(ctx, ActionStart)
	s.Apply(ctx, ActionChooseChat)
	if _, err := s.ChatHandle(ctx, "start"); err != nil {
		t.Fatalf("chat handle: %v", err)
	}

	if _, err := s.Apply(ctx, ActionBack); err != nil {
		t.Fatalf("back: %v", err)
	}
	if s.ChatMessages() != nil {
		t.Error("chat history survived leaving the view")
	}
	// No chat preferences were committed mid-flow.
	if p := s.Preferences(); p.City != "" {
		t.Errorf("City = %q, want empty", p.City)
	}
}

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	s, _ := m.Create(ctx, tenant.ByID("default"), false, "")

	if !s.ToggleFavorite(ctx, "bonsai-ficus") {
		t.Error("first toggle = false, want added")
	}
	if s.ToggleFavorite(ctx, "bonsai-ficus") {
		t.Error("second toggle = true, want removed")
	}
	if got := s.Favorites(); len(got) != 0 {
		t.Errorf("Favorites = %v, want empty", got)
	}
}

func TestSetCartQuantity(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	s, _ := m.Create(ctx, tenant.ByID("default"), false, "")

	s.SetCartQuantity(ctx, "lavanda", 1)
	cart := s.SetCartQuantity(ctx, "lavanda", 4)
	if len(cart) != 1 || cart[0].Quantity != 4 {
		t.Errorf("cart = %v, want lavanda x4", cart)
	}
	if cart = s.SetCartQuantity(ctx, "lavanda", 0); len(cart) != 0 {
		t.Errorf("cart = %v, want empty after zero quantity", cart)
	}
}

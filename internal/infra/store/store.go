package store

import (
	"context"
	"errors"

	"floraconcierge/backend/internal/domain/prefs"
)

// ErrNotFound reports that no state was persisted for the key yet.
var ErrNotFound = errors.New("store: not found")

type CartItem struct {
	PlantID  string `json:"plant_id"`
	Quantity int    `json:"quantity"`
}

// Record is the durable slice of session state: intake preferences plus the
// favorites list and cart. Views and the kiosk flag are deliberately not
// persisted.
type Record struct {
	Preferences prefs.Preferences `json:"preferences"`
	Favorites   []string          `json:"favorites"`
	Cart        []CartItem        `json:"cart"`
}

// Store persists one Record per tenant+session. Implementations keep two
// parallel paths: the combined record and separate favorites/cart keys, which
// must agree after any Save. Load prefers the combined record and falls back
// to the separate keys.
type Store interface {
	Load(ctx context.Context, tenantID, sessionID string) (Record, error)
	Save(ctx context.Context, tenantID, sessionID string, rec Record) error
}

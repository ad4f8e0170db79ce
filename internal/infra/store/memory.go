package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is the in-process store used in tests and when no Redis address is
// configured. It mirrors the dual-path layout of the Redis store so both
// implementations share one contract.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, tenantID, sessionID string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if raw, ok := m.data[stateKey(tenantID, sessionID)]; ok {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err == nil {
			return rec, nil
		}
	}
	// Fall back to the separate keys.
	var rec Record
	found := false
	if raw, ok := m.data[favoritesKey(tenantID, sessionID)]; ok {
		if json.Unmarshal(raw, &rec.Favorites) == nil {
			found = true
		}
	}
	if raw, ok := m.data[cartKey(tenantID, sessionID)]; ok {
		if json.Unmarshal(raw, &rec.Cart) == nil {
			found = true
		}
	}
	if !found {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (m *Memory) Save(_ context.Context, tenantID, sessionID string, rec Record) error {
	combined, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	favorites, err := json.Marshal(rec.Favorites)
	if err != nil {
		return err
	}
	cart, err := json.Marshal(rec.Cart)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[stateKey(tenantID, sessionID)] = combined
	m.data[favoritesKey(tenantID, sessionID)] = favorites
	m.data[cartKey(tenantID, sessionID)] = cart
	return nil
}

// Corrupt overwrites the combined record with unparseable bytes. Test helper.
func (m *Memory) Corrupt(tenantID, sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[stateKey(tenantID, sessionID)] = []byte("{not json")
}

func stateKey(tenantID, sessionID string) string {
	return "fc:state:" + tenantID + ":" + sessionID
}

func favoritesKey(tenantID, sessionID string) string {
	return "fc:favorites:" + tenantID + ":" + sessionID
}

func cartKey(tenantID, sessionID string) string {
	return "fc:cart:" + tenantID + ":" + sessionID
}

package suggest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/domain/match"
	"floraconcierge/backend/internal/domain/prefs"
)

// ErrSuperseded is returned when a newer Generate call started before this
// one finished; its result was discarded and the caller should use the newer
// one.
var ErrSuperseded = errors.New("suggest: generation superseded")

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortName      SortKey = "name"
)

// ParseSortKey validates a sort key supplied by the client, defaulting to
// relevance for empty input.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortRelevance, nil
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortName:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("suggest: unknown sort key %q", s)
}

// Service runs the scoring pass over a tenant's catalog and caches the last
// generated result set for synchronous filtering and re-sorting. A Service
// belongs to one session.
type Service struct {
	catalog catalog.Provider
	latency time.Duration

	mu      sync.Mutex
	gen     uint64
	results []match.Result
	sortKey SortKey
}

func New(provider catalog.Provider, latency time.Duration) *Service {
	return &Service{catalog: provider, latency: latency, sortKey: SortRelevance}
}

// Generate scores the tenant's catalog against the preferences and installs
// the ranked result set. The simulated latency models a backend round trip.
// Only the most recent call may install results: a call superseded while it
// slept or scored returns ErrSuperseded and leaves the newer state alone.
func (s *Service) Generate(ctx context.Context, p prefs.Preferences, tenantID string) ([]match.Result, error) {
	s.mu.Lock()
	s.gen++
	myGen := s.gen
	s.mu.Unlock()

	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	plants, err := s.catalog.PlantsByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("suggest: load catalog for %s: %w", tenantID, err)
	}

	climate := match.ResolveClimate(p.City)
	results := make([]match.Result, 0, len(plants))
	for _, plant := range plants {
		if r, ok := match.Score(plant, p, climate); ok {
			results = append(results, r)
		}
	}
	// Stable keeps catalog order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != myGen {
		log.Printf("suggest tenant=%s gen=%d stale result discarded", tenantID, myGen)
		return nil, ErrSuperseded
	}
	s.results = results
	s.sortKey = SortRelevance
	return s.ordered(), nil
}

// Results returns the cached set under the current sort key.
func (s *Service) Results() []match.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordered()
}

// FilterByCategory narrows the cached set to one category. A nil filter (empty
// string) returns the full set. It never re-runs the scoring pass.
func (s *Service) FilterByCategory(category prefs.Category) []match.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.ordered()
	if category == "" {
		return all
	}
	out := make([]match.Result, 0, len(all))
	for _, r := range all {
		if r.Plant.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// SortBy switches the presentation order of the cached set.
func (s *Service) SortBy(key SortKey) []match.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
	return s.ordered()
}

// ordered copies the cached results under the active sort key. Callers must
// hold s.mu.
func (s *Service) ordered() []match.Result {
	out := make([]match.Result, len(s.results))
	copy(out, s.results)
	switch s.sortKey {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Plant.Price < out[j].Plant.Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Plant.Price > out[j].Plant.Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Plant.Name < out[j].Plant.Name })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	}
	return out
}

package catalog

import (
	"context"

	"floraconcierge/backend/internal/domain/prefs"
)

// Plant is a catalog entry. Immutable once loaded.
type Plant struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	ScientificName string              `json:"scientific_name,omitempty"`
	Description    string              `json:"description,omitempty"`
	Price          float64             `json:"price"`
	Stock          int                 `json:"stock"`
	Category       prefs.Category      `json:"category"`
	CareLevel      prefs.CareLevel     `json:"care_level"`
	Environments   []prefs.Environment `json:"environments"`
	PetFriendly    bool                `json:"pet_friendly"`
	Climates       []prefs.Climate     `json:"climates"`
	TenantID       string              `json:"tenant_id"`
}

// GrowsIn reports whether the plant suits the given environment.
func (p Plant) GrowsIn(env prefs.Environment) bool {
	for _, e := range p.Environments {
		if e == env {
			return true
		}
	}
	return false
}

// ThrivesIn reports whether the plant suits the given climate.
func (p Plant) ThrivesIn(c prefs.Climate) bool {
	for _, cl := range p.Climates {
		if cl == c {
			return true
		}
	}
	return false
}

// Provider is read-only access to the catalog of one store.
type Provider interface {
	PlantsByTenant(ctx context.Context, tenantID string) ([]Plant, error)
}

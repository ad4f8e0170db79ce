package postgres

import (
	"context"
	"fmt"

	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/domain/prefs"
)

// CatalogProvider reads the plant catalog from postgres. Shared plants have a
// NULL tenant_id and belong to every store.
type CatalogProvider struct {
	DB *DB
}

func NewCatalogProvider(db *DB) *CatalogProvider {
	return &CatalogProvider{DB: db}
}

func (c *CatalogProvider) PlantsByTenant(ctx context.Context, tenantID string) ([]catalog.Plant, error) {
	rows, err := c.DB.Pool.Query(ctx, `
		SELECT id, name, scientific_name, description, price, stock,
		       category, care_level, environments, pet_friendly, climates,
		       COALESCE(tenant_id, '')
		FROM plants
		WHERE tenant_id = $1 OR tenant_id IS NULL
		ORDER BY id`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("postgres: query plants for %s: %w", tenantID, err)
	}
	defer rows.Close()

	var plants []catalog.Plant
	for rows.Next() {
		var p catalog.Plant
		var envs, climates []string
		if err := rows.Scan(
			&p.ID, &p.Name, &p.ScientificName, &p.Description, &p.Price, &p.Stock,
			&p.Category, &p.CareLevel, &envs, &p.PetFriendly, &climates, &p.TenantID,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan plant: %w", err)
		}
		for _, e := range envs {
			p.Environments = append(p.Environments, prefs.Environment(e))
		}
		for _, cl := range climates {
			p.Climates = append(p.Climates, prefs.Climate(cl))
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}

package quote

import (
	"fmt"
	"time"

	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/infra/store"
)

// Quote is a printable summary of a session's cart, handed to the customer at
// the counter of stores without online checkout.
type Quote struct {
	Number    string
	CreatedAt time.Time
	StoreName string
	Contact   string
	Items     []Item

	Subtotal float64
	Total    float64
}

type Item struct {
	PlantID   string
	Name      string
	Qty       int
	UnitPrice float64
	LineTotal float64
}

// FromCart prices a cart against the catalog. Cart lines whose plant is no
// longer in the catalog are skipped.
func FromCart(number, storeName, contact string, cart []store.CartItem, plants []catalog.Plant) Quote {
	byID := make(map[string]catalog.Plant, len(plants))
	for _, p := range plants {
		byID[p.ID] = p
	}

	q := Quote{
		Number:    number,
		CreatedAt: time.Now(),
		StoreName: storeName,
		Contact:   contact,
	}
	for _, line := range cart {
		p, ok := byID[line.PlantID]
		if !ok {
			continue
		}
		total := p.Price * float64(line.Quantity)
		q.Items = append(q.Items, Item{
			PlantID:   p.ID,
			Name:      p.Name,
			Qty:       line.Quantity,
			UnitPrice: p.Price,
			LineTotal: total,
		})
		q.Subtotal += total
	}
	q.Total = q.Subtotal
	return q
}

// FormatBRL renders a price the way the stores print them.
func FormatBRL(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

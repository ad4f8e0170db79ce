package pdf

import "floraconcierge/backend/internal/domain/quote"

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}

package location

import (
	"context"
	"errors"
	"testing"
)

func TestMockProviderResolve(t *testing.T) {
	p := MockProvider{}
	cases := []struct {
		lat, lng float64
		wantCity string
	}{
		{-23.55, -46.63, "São Paulo"},
		{-23.5, -47.45, "Sorocaba"},
		{-25.43, -49.27, "Curitiba"},
		{-30.03, -51.23, "Porto Alegre"},
		{10, 10, "São Paulo"}, // outside every box
	}
	for _, c := range cases {
		got, err := p.Resolve(context.Background(), c.lat, c.lng)
		if err != nil {
			t.Errorf("Resolve(%.2f, %.2f): unexpected error: %v", c.lat, c.lng, err)
			continue
		}
		if got.City != c.wantCity {
			t.Errorf("Resolve(%.2f, %.2f) = %q, want %q", c.lat, c.lng, got.City, c.wantCity)
		}
		if got.Country != "Brasil" {
			t.Errorf("Country = %q, want Brasil", got.Country)
		}
	}
}

func TestMockProviderNullIsland(t *testing.T) {
	if _, err := (MockProvider{}).Resolve(context.Background(), 0, 0); !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

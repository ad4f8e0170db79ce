package location

import (
	"context"
	"errors"
)

// Location errors are never fatal: every flow degrades to "no location".
var (
	ErrPermissionDenied = errors.New("location: permission denied")
	ErrUnavailable      = errors.New("location: position unavailable")
	ErrTimeout          = errors.New("location: timed out")
	ErrUnsupported      = errors.New("location: not supported")
)

type Place struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Provider resolves device coordinates to a city. Implementations may be a
// real reverse-geocoding client or the fixed boxes below.
type Provider interface {
	Resolve(ctx context.Context, lat, lng float64) (Place, error)
}

type box struct {
	latMin, latMax, lngMin, lngMax float64
	place                          Place
}

// MockProvider maps coordinates to the demo cities via fixed bounding boxes,
// standing in for a reverse-geocoding API.
type MockProvider struct{}

var boxes = []box{
	{-24, -23, -47, -46, Place{"São Paulo", "SP", "Brasil"}},
	{-24, -23, -48, -47, Place{"Sorocaba", "SP", "Brasil"}},
	{-23.5, -22.5, -44, -43, Place{"Rio de Janeiro", "RJ", "Brasil"}},
	{-20.5, -19.5, -44.5, -43.5, Place{"Belo Horizonte", "MG", "Brasil"}},
	{-26, -25, -50, -49, Place{"Curitiba", "PR", "Brasil"}},
	{-31, -29.5, -52, -50.5, Place{"Porto Alegre", "RS", "Brasil"}},
	{-14, -12, -39, -38, Place{"Salvador", "BA", "Brasil"}},
	{-16.5, -15, -48.5, -47.5, Place{"Brasília", "DF", "Brasil"}},
}

func (MockProvider) Resolve(_ context.Context, lat, lng float64) (Place, error) {
	if lat == 0 && lng == 0 {
		return Place{}, ErrUnavailable
	}
	for _, b := range boxes {
		if lat > b.latMin && lat < b.latMax && lng > b.lngMin && lng < b.lngMax {
			return b.place, nil
		}
	}
	// Default region when coordinates fall outside every known box.
	return Place{City: "São Paulo", State: "SP", Country: "Brasil"}, nil
}

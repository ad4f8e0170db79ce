package tenant

import (
	"net/url"
	"testing"
)

func TestByID(t *testing.T) {
	if got := ByID("jardim-encantado"); got.Name != "Jardim Encantado" {
		t.Errorf("Name = %q, want Jardim Encantado", got.Name)
	}
	if got := ByID("unknown-store"); got.ID != DefaultID {
		t.Errorf("unknown id resolved to %q, want default", got.ID)
	}
}

func TestResolveQueryWinsOverHost(t *testing.T) {
	q := url.Values{"tenant": {"verde-vida"}}
	got := Resolve(q, "floricultura-bella.floraconcierge.com.br")
	if got.ID != "verde-vida" {
		t.Errorf("ID = %q, want verde-vida", got.ID)
	}
}

func TestResolveSubdomain(t *testing.T) {
	cases := []struct {
		host string
		want string
	}{
		{"natura-jardins.floraconcierge.com.br", "natura-jardins"},
		{"natura-jardins.floraconcierge.com.br:8080", "natura-jardins"},
		{"www.floraconcierge.com.br", DefaultID},
		{"localhost:3000", DefaultID},
		{"", DefaultID},
	}
	for _, c := range cases {
		if got := Resolve(url.Values{}, c.host); got.ID != c.want {
			t.Errorf("Resolve(host=%q) = %q, want %q", c.host, got.ID, c.want)
		}
	}
}

func TestResolveUnknownQueryFallsThrough(t *testing.T) {
	q := url.Values{"tenant": {"not-a-store"}}
	got := Resolve(q, "verde-vida.floraconcierge.com.br")
	if got.ID != "verde-vida" {
		t.Errorf("ID = %q, want subdomain fallback verde-vida", got.ID)
	}
}

func TestKioskRequested(t *testing.T) {
	if !KioskRequested(url.Values{"kiosk": {"true"}}) {
		t.Error("kiosk=true not detected")
	}
	if KioskRequested(url.Values{"kiosk": {"1"}}) {
		t.Error("kiosk=1 accepted, want exact true")
	}
	if KioskRequested(url.Values{}) {
		t.Error("missing flag reported as kiosk")
	}
}

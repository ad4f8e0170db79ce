package tenant

import (
	"net/url"
	"strings"
)

// Config is one branded store instance. Visual theming lives in the client;
// the backend only carries identity, contact and feature flags.
type Config struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Contact  Contact  `json:"contact"`
	Features Features `json:"features"`
}

type Contact struct {
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours"`
}

type Features struct {
	EnableGeolocation    bool `json:"enable_geolocation"`
	EnableQuiz           bool `json:"enable_quiz"`
	EnableChat           bool `json:"enable_chat"`
	EnableKioskMode      bool `json:"enable_kiosk_mode"`
	ShowPrices           bool `json:"show_prices"`
	ShowStock            bool `json:"show_stock"`
	EnableOnlinePurchase bool `json:"enable_online_purchase"`
}

const DefaultID = "default"

var tenants = map[string]Config{
	"default": {
		ID: "default", Name: "FloraConcierge",
		Contact: Contact{
			Phone: "(11) 99999-9999", WhatsApp: "(11) 99999-9999",
			Email: "contato@floraconcierge.com.br",
			Address: "Av. das Flores, 123 - São Paulo, SP", WorkingHours: "Seg-Sáb: 8h às 18h",
		},
		Features: Features{
			EnableGeolocation: true, EnableQuiz: true, EnableChat: true,
			EnableKioskMode: true, ShowPrices: true, ShowStock: true, EnableOnlinePurchase: true,
		},
	},
	"jardim-encantado": {
		ID: "jardim-encantado", Name: "Jardim Encantado",
		Contact: Contact{
			Phone: "(15) 3234-5678", WhatsApp: "(15) 99876-5432",
			Email: "ola@jardimencantado.com.br",
			Address: "Rua das Orquídeas, 456 - Sorocaba, SP", WorkingHours: "Seg-Sex: 9h às 19h | Sáb: 9h às 14h",
		},
		Features: Features{
			EnableGeolocation: true, EnableQuiz: true, EnableChat: true,
			EnableKioskMode: true, ShowPrices: true, ShowStock: true,
		},
	},
	"verde-vida": {
		ID: "verde-vida", Name: "Verde Vida Plantas",
		Contact: Contact{
			Phone: "(11) 4567-8901", WhatsApp: "(11) 98765-4321",
			Email: "contato@verdevida.com.br",
			Address: "Av. Verde, 789 - São Paulo, SP", WorkingHours: "Seg-Sáb: 8h às 20h | Dom: 9h às 14h",
		},
		Features: Features{
			EnableGeolocation: true, EnableQuiz: true,
			EnableKioskMode: true, ShowPrices: true, ShowStock: true, EnableOnlinePurchase: true,
		},
	},
	"floricultura-bella": {
		ID: "floricultura-bella", Name: "Bella Flores",
		Contact: Contact{
			Phone: "(21) 3333-4444", WhatsApp: "(21) 98888-7777",
			Email: "atendimento@bellaflores.com.br",
			Address: "Rua das Rosas, 321 - Rio de Janeiro, RJ", WorkingHours: "Seg-Sáb: 8h às 18h",
		},
		Features: Features{
			EnableGeolocation: true, EnableQuiz: true, EnableChat: true,
			EnableKioskMode: true, ShowPrices: true, EnableOnlinePurchase: true,
		},
	},
	"natura-jardins": {
		ID: "natura-jardins", Name: "Natura Jardins",
		Contact: Contact{
			Phone: "(31) 4444-5555", WhatsApp: "(31) 97777-6666",
			Email: "contato@naturajardins.com.br",
			Address: "Av. das Palmeiras, 555 - Belo Horizonte, MG", WorkingHours: "Seg-Sex: 8h às 18h | Sáb: 8h às 12h",
		},
		Features: Features{
			EnableGeolocation: true, EnableQuiz: true,
			EnableKioskMode: true, ShowPrices: true, ShowStock: true,
		},
	},
}

// ByID returns the tenant for id, falling back to the default store for
// unknown ids.
func ByID(id string) Config {
	if t, ok := tenants[id]; ok {
		return t
	}
	return tenants[DefaultID]
}

// Resolve picks the tenant for a request: explicit ?tenant= query parameter
// first, then the hostname subdomain, then the default store.
func Resolve(query url.Values, host string) Config {
	if id := query.Get("tenant"); id != "" {
		if t, ok := tenants[id]; ok {
			return t
		}
	}
	if host != "" {
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		sub := strings.Split(host, ".")[0]
		if t, ok := tenants[sub]; ok {
			return t
		}
	}
	return tenants[DefaultID]
}

// KioskRequested reports the kiosk query flag.
func KioskRequested(query url.Values) bool {
	return query.Get("kiosk") == "true"
}

package match

import (
	"strings"

	"floraconcierge/backend/internal/domain/prefs"
)

// cityClimates is the fixed lookup used until a real geocoding/climate API is
// wired in. Unknown cities resolve to tropical.
var cityClimates = map[string]prefs.Climate{
	"são paulo":      prefs.ClimateSubtropical,
	"sorocaba":       prefs.ClimateSubtropical,
	"rio de janeiro": prefs.ClimateTropical,
	"belo horizonte": prefs.ClimateTropical,
	"curitiba":       prefs.ClimateTemperate,
	"porto alegre":   prefs.ClimateSubtropical,
	"salvador":       prefs.ClimateTropical,
	"brasília":       prefs.ClimateTropical,
}

// ResolveClimate maps a city name to its climate zone.
func ResolveClimate(city string) prefs.Climate {
	if c, ok := cityClimates[strings.ToLower(strings.TrimSpace(city))]; ok {
		return c
	}
	return prefs.ClimateTropical
}

package chat

import (
	"strings"
	"unicode"

	"floraconcierge/backend/internal/domain/prefs"
)

// knownCities backs the free-text city extractor. A real geocoding lookup
// would replace this list.
var knownCities = []string{
	"são paulo", "rio de janeiro", "belo horizonte", "curitiba", "porto alegre",
	"salvador", "brasília", "fortaleza", "recife", "sorocaba", "campinas",
	"santos", "florianópolis", "vitória", "goiânia", "manaus", "belém",
	"são luís", "teresina", "natal", "joão pessoa", "maceió", "aracaju",
	"cuiabá", "campo grande", "porto velho", "boa vista", "macapá",
	"são josé dos campos", "ribeirão preto", "são bernardo", "santo andré",
	"osasco", "guarulhos", "barueri",
}

// extractCity pulls a city name out of free text: a known city wins, then any
// capitalized word longer than three runes, then the whole message when it is
// plausibly short. Returns "" when nothing looks like a city.
func extractCity(message string) string {
	lower := strings.ToLower(message)
	for _, city := range knownCities {
		if strings.Contains(lower, city) {
			return titleCase(city)
		}
	}

	for _, word := range strings.Fields(message) {
		runes := []rune(word)
		if len(runes) > 3 && unicode.IsUpper(runes[0]) {
			return word
		}
	}

	trimmed := strings.TrimSpace(message)
	if n := len([]rune(trimmed)); n > 3 && n < 30 {
		return titleCase(trimmed)
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func extractEnvironment(value string) (prefs.Environment, bool) {
	switch {
	case containsAny(value, "indoor", "casa", "dentro"):
		return prefs.EnvIndoor, true
	case containsAny(value, "balcony", "varanda", "terraço"):
		return prefs.EnvBalcony, true
	case containsAny(value, "outdoor", "jardim", "quintal"):
		return prefs.EnvOutdoor, true
	case containsAny(value, "office", "escritório", "trabalho"):
		return prefs.EnvOffice, true
	}
	return "", false
}

func extractCareLevel(value string) (prefs.CareLevel, bool) {
	switch {
	case containsAny(value, "beginner", "iniciante", "nunca"):
		return prefs.CareBeginner, true
	case containsAny(value, "easy", "algumas"):
		return prefs.CareEasy, true
	case containsAny(value, "moderate", "intermediário", "regularmente"):
		return prefs.CareModerate, true
	case containsAny(value, "advanced", "experiente", "jardineiro"):
		return prefs.CareAdvanced, true
	case strings.Contains(value, "expert"):
		return prefs.CareExpert, true
	}
	return "", false
}

// extractPetFriendly never fails: anything other than an explicit "no" means
// the visitor has pets.
func extractPetFriendly(value string) bool {
	v := strings.TrimSpace(value)
	if v == "no" || v == "não" || v == "nao" {
		return false
	}
	return !containsAny(v, "não tenho", "nao tenho", "sem pets")
}

// extractBudget maps the quick-reply ranges, defaulting to [0,500] for
// anything unrecognized ("any price" included).
func extractBudget(value string) prefs.BudgetRange {
	switch {
	case strings.Contains(value, "0-50"):
		return prefs.BudgetRange{Min: 0, Max: 50}
	case strings.Contains(value, "50-100"):
		return prefs.BudgetRange{Min: 50, Max: 100}
	case strings.Contains(value, "100-200"):
		return prefs.BudgetRange{Min: 100, Max: 200}
	case strings.Contains(value, "200+"), strings.Contains(value, "acima"):
		return prefs.BudgetRange{Min: 200, Max: 1000}
	}
	return prefs.BudgetRange{Min: 0, Max: 500}
}

// extractCategories collects every category mentioned. "all" selects the full
// set; an empty extraction falls back to the starter trio.
func extractCategories(value string) []prefs.Category {
	lower := strings.ToLower(value)
	if containsAny(lower, "all", "todas", "surpreenda") {
		return append([]prefs.Category(nil), prefs.AllCategories...)
	}

	var out []prefs.Category
	if containsAny(lower, "flower", "flor") {
		out = append(out, prefs.CatFlowers)
	}
	if containsAny(lower, "succulent", "suculenta", "cacto") {
		out = append(out, prefs.CatSucculents, prefs.CatCacti)
	}
	if containsAny(lower, "foliage", "folhagem") {
		out = append(out, prefs.CatFoliage)
	}
	if containsAny(lower, "tree", "árvore", "palmeira") {
		out = append(out, prefs.CatTrees)
	}
	if containsAny(lower, "herb", "erva") {
		out = append(out, prefs.CatHerbs)
	}
	if containsAny(lower, "orchid", "orquídea") {
		out = append(out, prefs.CatOrchids)
	}
	if strings.Contains(lower, "bonsai") {
		out = append(out, prefs.CatBonsai)
	}

	if len(out) == 0 {
		return []prefs.Category{prefs.CatFlowers, prefs.CatSucculents, prefs.CatFoliage}
	}
	return out
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

package match

import (
	"fmt"

	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/domain/prefs"
)

// includeFloor is the minimum clamped score a plant must exceed to appear in
// results at all.
const includeFloor = 20

// maxReasons caps the human-readable explanation list.
const maxReasons = 3

// Result pairs a catalog plant with its relevance for one preference set.
// The plant is a read-only view into the catalog, never a copy the caller
// should mutate.
type Result struct {
	Plant   catalog.Plant `json:"plant"`
	Score   int           `json:"match_score"`
	Reasons []string      `json:"match_reasons"`
}

// User-facing strings stay in pt-BR; the stores are Brazilian.
var environmentLabels = map[prefs.Environment]string{
	prefs.EnvIndoor:   "dentro de casa",
	prefs.EnvOutdoor:  "área externa",
	prefs.EnvBalcony:  "varanda",
	prefs.EnvGarden:   "jardim",
	prefs.EnvOffice:   "escritório",
	prefs.EnvBathroom: "banheiro",
	prefs.EnvKitchen:  "cozinha",
}

// Score rates one plant against the visitor's preferences. It is a pure
// function: identical inputs always yield an identical score and reason order.
// The boolean is false when the plant falls at or under the inclusion floor
// and must be dropped from results.
//
// Factors run in a fixed order and accumulate from zero:
// environment 30, care proximity 25/15/10, pets 20/10, budget 15/10/5,
// category 10, climate 15, stock +5/-5. The total is clamped to [0,100] and
// only the first three reasons are kept.
func Score(plant catalog.Plant, p prefs.Preferences, climate prefs.Climate) (Result, bool) {
	score := 0
	var reasons []string

	if p.Environment != nil && plant.GrowsIn(*p.Environment) {
		score += 30
		reasons = append(reasons, fmt.Sprintf("Perfeita para %s", environmentLabels[*p.Environment]))
	}

	if p.CareLevel != nil {
		userCare := p.CareLevel.Rank()
		plantCare := plant.CareLevel.Rank()
		diff := userCare - plantCare
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff == 0:
			score += 25
			reasons = append(reasons, "Nível de cuidado ideal para você")
		case diff == 1:
			score += 15
			reasons = append(reasons, "Cuidado compatível com sua experiência")
		case userCare > plantCare:
			score += 10
			reasons = append(reasons, "Muito fácil de cuidar")
		}
	}

	if p.PetFriendly != nil {
		if *p.PetFriendly && plant.PetFriendly {
			score += 20
			reasons = append(reasons, "Segura para pets")
		} else if !*p.PetFriendly {
			// No penalty for not needing the feature.
			score += 10
		}
	}

	if p.Budget != nil {
		switch {
		case plant.Price >= p.Budget.Min && plant.Price <= p.Budget.Max:
			score += 15
			reasons = append(reasons, "Dentro do seu orçamento")
		case plant.Price < p.Budget.Min:
			score += 10
			reasons = append(reasons, "Preço abaixo do esperado")
		case plant.Price <= p.Budget.Max*1.2:
			score += 5
			reasons = append(reasons, "Próximo ao seu orçamento")
		}
	}

	if len(p.Categories) > 0 && p.HasCategory(plant.Category) {
		score += 10
		reasons = append(reasons, "Da categoria que você prefere")
	}

	if p.City != "" && plant.ThrivesIn(climate) {
		score += 15
		reasons = append(reasons, fmt.Sprintf("Ideal para o clima de %s", p.City))
	}

	if plant.Stock > 10 {
		score += 5
	}
	if plant.Stock < 5 {
		score -= 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	if score <= includeFloor {
		return Result{}, false
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return Result{Plant: plant, Score: score, Reasons: reasons}, true
}

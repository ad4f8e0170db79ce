package match

import (
	"reflect"
	"testing"

	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/domain/prefs"
)

func fullMatchPrefs() prefs.Preferences {
	return prefs.Preferences{
		Environment: prefs.EnvironmentPtr(prefs.EnvIndoor),
		CareLevel:   prefs.CareLevelPtr(prefs.CareEasy),
		PetFriendly: prefs.BoolPtr(true),
		Budget:      &prefs.BudgetRange{Min: 0, Max: 100},
		Categories:  []prefs.Category{prefs.CatSucculents},
		City:        "Rio de Janeiro",
	}
}

func succulentPlant() catalog.Plant {
	return catalog.Plant{
		ID: "test-succulent", Name: "Suculenta Teste",
		Price: 80, Stock: 12,
		Category:     prefs.CatSucculents,
		CareLevel:    prefs.CareEasy,
		Environments: []prefs.Environment{prefs.EnvIndoor},
		PetFriendly:  true,
		Climates:     []prefs.Climate{prefs.ClimateTropical},
	}
}

func TestScoreFullMatchClampsTo100(t *testing.T) {
	p := fullMatchPrefs()
	plant := succulentPlant()

	// 30+25+20+15+10+15+5 = 120, clamped.
	r, ok := Score(plant, p, ResolveClimate(p.City))
	if !ok {
		t.Fatal("plant excluded, want included")
	}
	if r.Score != 100 {
		t.Errorf("Score = %d, want 100", r.Score)
	}
	if len(r.Reasons) != 3 {
		t.Errorf("len(Reasons) = %d, want 3", len(r.Reasons))
	}
	// Ties broken by factor order: environment, care, pets.
	want := []string{
		"Perfeita para dentro de casa",
		"Nível de cuidado ideal para você",
		"Segura para pets",
	}
	if !reflect.DeepEqual(r.Reasons, want) {
		t.Errorf("Reasons = %v, want %v", r.Reasons, want)
	}
}

func TestScoreBudgetBeyondTolerance(t *testing.T) {
	p := prefs.Preferences{Budget: &prefs.BudgetRange{Min: 0, Max: 100}}
	plant := succulentPlant()
	plant.Price = 250 // 100*1.2 = 120, still over

	// Budget contributes 0; stock +5  => 5 <= floor, excluded.
	if _, ok := Score(plant, p, prefs.ClimateTropical); ok {
		t.Error("plant included, want excluded with only stock bonus")
	}

	// Same plant with an environment match clears the floor but gets no
	// budget reason.
	p.Environment = prefs.EnvironmentPtr(prefs.EnvIndoor)
	r, ok := Score(plant, p, prefs.ClimateTropical)
	if !ok {
		t.Fatal("plant excluded, want included")
	}
	if r.Score != 35 {
		t.Errorf("Score = %d, want 35 (env 30 + stock 5)", r.Score)
	}
	for _, reason := range r.Reasons {
		if reason == "Próximo ao seu orçamento" || reason == "Dentro do seu orçamento" {
			t.Errorf("unexpected budget reason %q", reason)
		}
	}
}

func TestScoreMuchEasierPlant(t *testing.T) {
	p := prefs.Preferences{CareLevel: prefs.CareLevelPtr(prefs.CareExpert)}
	plant := succulentPlant()
	plant.CareLevel = prefs.CareBeginner

	// Distance 4, plant easier than preferred: +10, plus env/none. Stock 12
	// adds 5: total 15, excluded; add environment to clear the floor.
	p.Environment = prefs.EnvironmentPtr(prefs.EnvIndoor)
	r, ok := Score(plant, p, prefs.ClimateTropical)
	if !ok {
		t.Fatal("plant excluded, want included")
	}
	if r.Score != 45 {
		t.Errorf("Score = %d, want 45 (env 30 + care 10 + stock 5)", r.Score)
	}
	found := false
	for _, reason := range r.Reasons {
		if reason == "Muito fácil de cuidar" {
			found = true
		}
	}
	if !found {
		t.Errorf("Reasons = %v, want to contain %q", r.Reasons, "Muito fácil de cuidar")
	}
}

func TestScoreLowStockNoMatchExcluded(t *testing.T) {
	plant := succulentPlant()
	plant.Stock = 3
	// No preferences set: 0 base, -5 penalty, clamped to 0, excluded.
	if _, ok := Score(plant, prefs.Preferences{}, prefs.ClimateTropical); ok {
		t.Error("plant included, want excluded")
	}
}

func TestScoreDeterministic(t *testing.T) {
	p := fullMatchPrefs()
	plant := succulentPlant()
	climate := ResolveClimate(p.City)

	first, ok := Score(plant, p, climate)
	if !ok {
		t.Fatal("plant excluded")
	}
	for i := 0; i < 10; i++ {
		again, ok := Score(plant, p, climate)
		if !ok {
			t.Fatal("plant excluded on repeat")
		}
		if again.Score != first.Score || !reflect.DeepEqual(again.Reasons, first.Reasons) {
			t.Fatalf("run %d: got (%d, %v), want (%d, %v)", i, again.Score, again.Reasons, first.Score, first.Reasons)
		}
	}
}

func TestScoreRangeOverSeedCatalog(t *testing.T) {
	preferenceSets := []prefs.Preferences{
		{},
		fullMatchPrefs(),
		{PetFriendly: prefs.BoolPtr(false)},
		{Budget: &prefs.BudgetRange{Min: 100, Max: 200}, CareLevel: prefs.CareLevelPtr(prefs.CareExpert)},
		{Environment: prefs.EnvironmentPtr(prefs.EnvBathroom), Categories: []prefs.Category{prefs.CatBonsai}, City: "Curitiba"},
	}
	for _, p := range preferenceSets {
		climate := ResolveClimate(p.City)
		for _, plant := range catalog.SeedPlants() {
			r, ok := Score(plant, p, climate)
			if !ok {
				continue
			}
			if r.Score <= includeFloor || r.Score > 100 {
				t.Errorf("plant %s: Score = %d, want in (20,100]", plant.ID, r.Score)
			}
			if len(r.Reasons) > maxReasons {
				t.Errorf("plant %s: %d reasons, want <= %d", plant.ID, len(r.Reasons), maxReasons)
			}
		}
	}
}

// Budget contribution never decreases as the price moves toward the midpoint
// of the range.
func TestScoreBudgetMonotonicity(t *testing.T) {
	budget := &prefs.BudgetRange{Min: 50, Max: 150}
	p := prefs.Preferences{
		Environment: prefs.EnvironmentPtr(prefs.EnvIndoor),
		Budget:      budget,
	}
	base := succulentPlant()

	contribution := func(price float64) int {
		plant := base
		plant.Price = price
		r, ok := Score(plant, p, prefs.ClimateTropical)
		if !ok {
			t.Fatalf("price %.0f: excluded", price)
		}
		return r.Score - 35 // env 30 + stock 5
	}

	mid := (budget.Min + budget.Max) / 2
	prices := []float64{mid, 60, 140, 40, 170, 250}
	prev := -1
	prevDist := -1.0
	for _, price := range prices {
		dist := price - mid
		if dist < 0 {
			dist = -dist
		}
		c := contribution(price)
		if prev >= 0 && dist >= prevDist && c > prev {
			t.Errorf("price %.0f (dist %.0f): contribution %d exceeds closer price's %d", price, dist, c, prev)
		}
		prev = c
		prevDist = dist
	}
}

func TestResolveClimate(t *testing.T) {
	cases := []struct {
		city string
		want prefs.Climate
	}{
		{"São Paulo", prefs.ClimateSubtropical},
		{"curitiba", prefs.ClimateTemperate},
		{"Salvador", prefs.ClimateTropical},
		{"Nowhere City", prefs.ClimateTropical},
		{"", prefs.ClimateTropical},
	}
	for _, c := range cases {
		if got := ResolveClimate(c.city); got != c.want {
			t.Errorf("ResolveClimate(%q) = %s, want %s", c.city, got, c.want)
		}
	}
}

package catalog

import (
	"context"

	"floraconcierge/backend/internal/domain/prefs"
)

// MemoryProvider serves a fixed in-memory catalog. It is the default provider
// when no database is configured and the fixture source for tests.
type MemoryProvider struct {
	plants []Plant
}

func NewMemoryProvider(plants []Plant) *MemoryProvider {
	if plants == nil {
		plants = SeedPlants()
	}
	return &MemoryProvider{plants: plants}
}

func (m *MemoryProvider) PlantsByTenant(_ context.Context, tenantID string) ([]Plant, error) {
	out := make([]Plant, 0, len(m.plants))
	for _, p := range m.plants {
		if p.TenantID == tenantID || p.TenantID == "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// SeedPlants returns the demo catalog. Plants without a tenant are shared by
// every store.
func SeedPlants() []Plant {
	return []Plant{
		{
			ID: "monstera-deliciosa", Name: "Monstera", ScientificName: "Monstera deliciosa",
			Description: "Folhagem tropical de folhas recortadas, muito resistente.",
			Price: 89.90, Stock: 15, Category: prefs.CatFoliage, CareLevel: prefs.CareEasy,
			Environments: []prefs.Environment{prefs.EnvIndoor, prefs.EnvOffice},
			PetFriendly:  false,
			Climates:     []prefs.Climate{prefs.ClimateTropical, prefs.ClimateSubtropical},
		},
		{
			ID: "echeveria-elegans", Name: "Echeveria", ScientificName: "Echeveria elegans",
			Description: "Suculenta em roseta, quase não precisa de rega.",
			Price: 24.90, Stock: 32, Category: prefs.CatSucculents, CareLevel: prefs.CareBeginner,
			Environments: []prefs.Environment{prefs.EnvIndoor, prefs.EnvBalcony, prefs.EnvOffice},
			PetFriendly:  true,
			Climates:     []prefs.Climate{prefs.ClimateArid, prefs.ClimateSubtropical, prefs.ClimateMediterranean},
		},
		{
			ID: "espada-sao-jorge", Name: "Espada-de-São-Jorge", ScientificName: "Sansevieria trifasciata",
			Description: "Praticamente indestrutível, tolera pouca luz.",
			Price: 45.00, Stock: 21, Category: prefs.CatFoliage, CareLevel: prefs.CareBeginner,
			Environments: []prefs.Environment{prefs.EnvIndoor, prefs.EnvOffice, prefs.EnvBathroom},
			PetFriendly:  false,
			Climates:     []prefs.Climate{prefs.ClimateTropical, prefs.ClimateSubtropical, prefs.ClimateArid},
		},
		{
			ID: "orquidea-phalaenopsis", Name: "Orquídea Phalaenopsis", ScientificName: "Phalaenopsis amabilis",
			Description: "Flores duradouras, pede luz indireta e rega moderada.",
			Price: 119.90, Stock: 8, Category: prefs.CatOrchids, CareLevel: prefs.CareModerate,
			Environments: []prefs.Environment{prefs.EnvIndoor},
			PetFriendly:  true,
			Climates:     []prefs.Climate{prefs.ClimateTropical, prefs.ClimateSubtropical},
		},
		{
			ID: "lavanda", Name: "Lavanda", ScientificName: "Lavandula angustifolia",
			Description: "Aromática de sol pleno, atrai polinizadores.",
			Price: 34.90, Stock: 12, Category: prefs.CatHerbs, CareLevel: prefs.CareModerate,
			Environments: []prefs.Environment{prefs.EnvOutdoor, prefs.EnvBalcony, prefs.EnvGarden},
			PetFriendly:  true,
			Climates:     []prefs.Climate{prefs.ClimateMediterranean, prefs.ClimateTemperate},
		},
		{
			ID: "cacto-mandacaru", Name: "Cacto Mandacaru", ScientificName: "Cereus jamacaru",
			Description: "Cacto colunar nativo, cresce pouco dentro de casa.",
			Price: 54.90, Stock: 4, Category: prefs.CatCacti, CareLevel: prefs.CareBeginner,
			Environments: []prefs.Environment{prefs.EnvIndoor, prefs.EnvBalcony, prefs.EnvOutdoor},
			PetFriendly:  false,
			Climates:     []prefs.Climate{prefs.ClimateArid, prefs.ClimateTropical},
		},
		{
			ID: "samambaia-americana", Name: "Samambaia Americana", ScientificName: "Nephrolepis exaltata",
			Description: "Clássico das varandas sombreadas, gosta de umidade.",
			Price: 39.90, Stock: 18, Category: prefs.CatFoliage, CareLevel: prefs.CareEasy,
			Environments: []prefs.Environment{prefs.EnvIndoor, prefs.EnvBalcony, prefs.EnvBathroom},
			PetFriendly:  true,
			Climates:     []prefs.Climate{prefs.ClimateTropical, prefs.ClimateSubtropical},
		},
		{
			ID: "rosa-do-deserto", Name: "Rosa-do-Deserto", ScientificName: "Adenium obesum",
			Description: "Flores vistosas e caudex escultural, sol pleno.",
			Price: 79.90, Stock: 9, Category: prefs.CatFlowers, CareLevel: prefs.CareAdvanced,
			Environments: []prefs.Environment{prefs.EnvOutdoor, prefs.EnvBalcony},
			PetFriendly:  false,
			Climates:     []prefs.Climate{prefs.ClimateArid, prefs.ClimateTropical},
		},
		{
			ID: "violeta-africana", Name: "Violeta Africana", ScientificName: "Saintpaulia ionantha",
			Description: "Pequena, florida o ano todo em luz indireta.",
			Price: 19.90, Stock: 26, Category: prefs.CatFlowers, CareLevel: prefs.CareEasy,
			Environments: []prefs.Environment{prefs.EnvIndoor, prefs.EnvKitchen, prefs.EnvOffice},
			PetFriendly:  true,
			Climates:     []prefs.Climate{prefs.ClimateSubtropical, prefs.ClimateTemperate},
		},
		{
			ID: "bonsai-ficus", Name: "Bonsai de Ficus", ScientificName: "Ficus retusa",
			Description: "Bonsai para iniciantes na arte, poda frequente.",
			Price: 249.90, Stock: 3, Category: prefs.CatBonsai, CareLevel: prefs.CareExpert,
			Environments: []prefs.Environment{prefs.EnvIndoor, prefs.EnvOffice},
			PetFriendly:  false,
			Climates:     []prefs.Climate{prefs.ClimateTropical, prefs.ClimateSubtropical},
		},
		{
			ID: "manjericao", Name: "Manjericão", ScientificName: "Ocimum basilicum",
			Description: "Erva de cozinha, colheita contínua.",
			Price: 14.90, Stock: 40, Category: prefs.CatHerbs, CareLevel: prefs.CareEasy,
			Environments: []prefs.Environment{prefs.EnvKitchen, prefs.EnvBalcony, prefs.EnvGarden},
			PetFriendly:  true,
			Climates:     []prefs.Climate{prefs.ClimateTropical, prefs.ClimateSubtropical, prefs.ClimateMediterranean},
		},
		{
			ID: "palmeira-areca", Name: "Palmeira Areca", ScientificName: "Dypsis lutescens",
			Description: "Palmeira de interior que purifica o ar.",
			Price: 159.90, Stock: 6, Category: prefs.CatTrees, CareLevel: prefs.CareModerate,
			Environments: []prefs.Environment{prefs.EnvIndoor, prefs.EnvOutdoor, prefs.EnvGarden},
			PetFriendly:  true,
			Climates:     []prefs.Climate{prefs.ClimateTropical, prefs.ClimateSubtropical},
		},
	}
}

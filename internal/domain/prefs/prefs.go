package prefs

type Environment string

const (
	EnvIndoor   Environment = "indoor"
	EnvOutdoor  Environment = "outdoor"
	EnvBalcony  Environment = "balcony"
	EnvGarden   Environment = "garden"
	EnvOffice   Environment = "office"
	EnvBathroom Environment = "bathroom"
	EnvKitchen  Environment = "kitchen"
)

type CareLevel string

const (
	CareBeginner CareLevel = "beginner"
	CareEasy     CareLevel = "easy"
	CareModerate CareLevel = "moderate"
	CareAdvanced CareLevel = "advanced"
	CareExpert   CareLevel = "expert"
)

// careRank orders care levels from least to most demanding.
var careRank = map[CareLevel]int{
	CareBeginner: 1,
	CareEasy:     2,
	CareModerate: 3,
	CareAdvanced: 4,
	CareExpert:   5,
}

// Rank returns the ordinal position of the level, or 0 for unknown values.
func (c CareLevel) Rank() int { return careRank[c] }

type Category string

const (
	CatFlowers    Category = "flowers"
	CatSucculents Category = "succulents"
	CatTrees      Category = "trees"
	CatFoliage    Category = "foliage"
	CatHerbs      Category = "herbs"
	CatCacti      Category = "cacti"
	CatOrchids    Category = "orchids"
	CatBonsai     Category = "bonsai"
)

// AllCategories lists every catalog category in display order.
var AllCategories = []Category{
	CatFlowers, CatSucculents, CatFoliage, CatTrees,
	CatHerbs, CatOrchids, CatCacti, CatBonsai,
}

type Climate string

const (
	ClimateTropical      Climate = "tropical"
	ClimateSubtropical   Climate = "subtropical"
	ClimateTemperate     Climate = "temperate"
	ClimateArid          Climate = "arid"
	ClimateMediterranean Climate = "mediterranean"
	ClimateContinental   Climate = "continental"
)

// BudgetRange is a closed price interval.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Preferences is the structured record of a visitor's stated intake choices.
// Unset optional fields are nil; Categories empty means "no preference".
type Preferences struct {
	Environment *Environment `json:"environment,omitempty"`
	CareLevel   *CareLevel   `json:"care_level,omitempty"`
	PetFriendly *bool        `json:"pet_friendly,omitempty"`
	Budget      *BudgetRange `json:"budget,omitempty"`
	Categories  []Category   `json:"categories,omitempty"`
	City        string       `json:"city,omitempty"`
	State       string       `json:"state,omitempty"`
}

// Merge unions other into p: set fields in other win, unset fields in other
// never clobber existing values.
func (p Preferences) Merge(other Preferences) Preferences {
	if other.Environment != nil {
		p.Environment = other.Environment
	}
	if other.CareLevel != nil {
		p.CareLevel = other.CareLevel
	}
	if other.PetFriendly != nil {
		p.PetFriendly = other.PetFriendly
	}
	if other.Budget != nil {
		p.Budget = other.Budget
	}
	if len(other.Categories) > 0 {
		p.Categories = other.Categories
	}
	if other.City != "" {
		p.City = other.City
	}
	if other.State != "" {
		p.State = other.State
	}
	return p
}

// Defaulted fills every unset field with the intake fallback values used when
// handing off to suggestion generation.
func (p Preferences) Defaulted() Preferences {
	if p.Environment == nil {
		env := EnvIndoor
		p.Environment = &env
	}
	if p.CareLevel == nil {
		care := CareEasy
		p.CareLevel = &care
	}
	if p.PetFriendly == nil {
		pf := false
		p.PetFriendly = &pf
	}
	if p.Budget == nil {
		p.Budget = &BudgetRange{Min: 0, Max: 500}
	}
	if len(p.Categories) == 0 {
		p.Categories = []Category{CatFlowers, CatSucculents, CatFoliage}
	}
	return p
}

// HasCategory reports whether c is among the preferred categories.
func (p Preferences) HasCategory(c Category) bool {
	for _, pc := range p.Categories {
		if pc == c {
			return true
		}
	}
	return false
}

func EnvironmentPtr(e Environment) *Environment { return &e }
func CareLevelPtr(c CareLevel) *CareLevel       { return &c }
func BoolPtr(b bool) *bool                      { return &b }

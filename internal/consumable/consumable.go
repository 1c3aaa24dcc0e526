package consumable

import "strings"

// Category classifies what kind of substance a consumable is.
type Category string

const (
	CategoryFood       Category = "food"
	CategoryBeverage   Category = "beverage"
	CategorySupplement Category = "supplement"
	CategoryMedication Category = "medication"
	CategoryAlcohol    Category = "alcohol"
	CategoryDrug       Category = "drug"
	CategoryHerb       Category = "herb"
	CategoryChemical   Category = "chemical"
	CategoryOther      Category = "other"
)

// Categories lists every known category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryBeverage,
		CategorySupplement,
		CategoryMedication,
		CategoryAlcohol,
		CategoryDrug,
		CategoryHerb,
		CategoryChemical,
		CategoryOther,
	}
}

// ParseCategory maps a free-form string onto a known category. Unknown
// values fold into CategoryOther rather than failing.
func ParseCategory(s string) Category {
	normalized := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, category := range Categories() {
		if normalized == category {
			return category
		}
	}
	return CategoryOther
}

// SafetyLevel is an ordered risk classification. The zero value is
// LevelUnknown so that records missing a declared level can be told apart
// from records declared safe.
type SafetyLevel string

const (
	LevelUnknown  SafetyLevel = ""
	LevelSafe     SafetyLevel = "safe"
	LevelCaution  SafetyLevel = "caution"
	LevelWarning  SafetyLevel = "warning"
	LevelDanger   SafetyLevel = "danger"
	LevelCritical SafetyLevel = "critical"
	LevelLethal   SafetyLevel = "lethal"
)

var levelRanks = map[SafetyLevel]int{
	LevelUnknown:  0,
	LevelSafe:     0,
	LevelCaution:  1,
	LevelWarning:  2,
	LevelDanger:   3,
	LevelCritical: 4,
	LevelLethal:   5,
}

// Rank returns the position of the level in the safe < caution < warning <
// danger < critical < lethal total order. Unknown levels rank with safe.
func (l SafetyLevel) Rank() int {
	if rank, ok := levelRanks[SafetyLevel(strings.ToLower(string(l)))]; ok {
		return rank
	}
	return levelRanks[LevelCaution]
}

// ParseSafetyLevel maps a free-form string onto a known level. Unknown
// values fold into LevelCaution, the most conservative default.
func ParseSafetyLevel(s string) SafetyLevel {
	normalized := SafetyLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelRanks[normalized]; ok && normalized != LevelUnknown {
		return normalized
	}
	if normalized == LevelUnknown {
		return LevelUnknown
	}
	return LevelCaution
}

// MoreRestrictive returns whichever of the two levels ranks higher.
func MoreRestrictive(a, b SafetyLevel) SafetyLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Form describes the physical presentation of a consumable.
type Form string

const (
	FormSolid   Form = "solid"
	FormLiquid  Form = "liquid"
	FormPowder  Form = "powder"
	FormCapsule Form = "capsule"
	FormTablet  Form = "tablet"
	FormGas     Form = "gas"
	FormOther   Form = "other"
)

// Nutrition holds per-serving nutritional facts. All fields are optional;
// a nil Nutrition on a Consumable means no facts were supplied at all.
type Nutrition struct {
	Calories       float64            `yaml:"calories" json:"calories"`
	Protein        float64            `yaml:"protein" json:"protein"`
	Carbs          float64            `yaml:"carbs" json:"carbs"`
	Fat            float64            `yaml:"fat" json:"fat"`
	Micronutrients map[string]float64 `yaml:"micronutrients,omitempty" json:"micronutrients,omitempty"`
}

// Consumable is a single substance record. It is immutable once created:
// nothing in this module writes to one after construction.
type Consumable struct {
	ID          string      `yaml:"id,omitempty" json:"id,omitempty"`
	Name        string      `yaml:"name" json:"name"`
	Category    Category    `yaml:"category" json:"category"`
	Form        Form        `yaml:"form,omitempty" json:"form,omitempty"`
	SafetyLevel SafetyLevel `yaml:"safety_level,omitempty" json:"safety_level,omitempty"`
	Nutrition   *Nutrition  `yaml:"nutrition,omitempty" json:"nutrition,omitempty"`
	Source      string      `yaml:"source,omitempty" json:"source,omitempty"`
}

// SourceManual marks records typed in by hand rather than resolved from a
// catalog. Manual records carry lower confidence in warning generation.
const SourceManual = "manual"

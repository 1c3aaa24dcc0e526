package consumable

import (
	"fmt"
	"strings"
)

// Plausibility ceilings for a single stated serving.
const (
	maxPlausibleCalories = 1000
	maxPlausibleProtein  = 100
	maxPlausibleCarbs    = 100
	maxPlausibleFat      = 100
)

// Report is the outcome of validating a single consumable. Errors are
// blocking from the validator's point of view; warnings are advisory.
type Report struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Validate checks one record for structural errors and semantic
// implausibilities. It never mutates its input and is safe to call with
// any value, including the zero Consumable.
func Validate(c Consumable) Report {
	var errors []string
	var warnings []string

	if strings.TrimSpace(c.Name) == "" {
		errors = append(errors, "name is required")
	}
	if strings.TrimSpace(string(c.Category)) == "" {
		errors = append(errors, "category is required")
	}

	if c.Category == CategoryFood {
		if c.SafetyLevel == LevelLethal {
			warnings = append(warnings, "food item declared lethal; classification is implausible")
		}
		if c.Nutrition == nil {
			warnings = append(warnings, "food item has no nutritional facts")
		}
	}

	if c.Nutrition != nil {
		if c.Nutrition.Calories > maxPlausibleCalories {
			warnings = append(warnings, fmt.Sprintf("calories %.0f exceeds plausible serving ceiling %d", c.Nutrition.Calories, maxPlausibleCalories))
		}
		if c.Nutrition.Protein > maxPlausibleProtein {
			warnings = append(warnings, fmt.Sprintf("protein %.0fg exceeds plausible serving ceiling %dg", c.Nutrition.Protein, maxPlausibleProtein))
		}
		if c.Nutrition.Carbs > maxPlausibleCarbs {
			warnings = append(warnings, fmt.Sprintf("carbs %.0fg exceeds plausible serving ceiling %dg", c.Nutrition.Carbs, maxPlausibleCarbs))
		}
		if c.Nutrition.Fat > maxPlausibleFat {
			warnings = append(warnings, fmt.Sprintf("fat %.0fg exceeds plausible serving ceiling %dg", c.Nutrition.Fat, maxPlausibleFat))
		}
	}

	return Report{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

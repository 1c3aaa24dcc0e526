package scoring

import "mixlab/internal/consumable"

// Recommendations produces advice for a combination given its safety
// score. Score bands come first, then category-specific advice for any
// represented risk category regardless of band.
func (e *Engine) Recommendations(items []consumable.Consumable, safetyScore int) []string {
	var recommendations []string

	switch {
	case safetyScore < 30:
		recommendations = append(recommendations,
			"This combination is not recommended.",
			"Seek professional advice before consuming any of these together.")
	case safetyScore < 60:
		recommendations = append(recommendations,
			"Exercise caution with this combination; consider spacing the items out.")
	case safetyScore >= 80:
		recommendations = append(recommendations,
			"This combination appears safe in normal quantities.")
	}

	categories := uniqueCategories(items)
	if _, ok := categories[consumable.CategoryAlcohol]; ok {
		recommendations = append(recommendations,
			"Alcohol present: drink water alongside and keep quantities moderate.")
	}
	if _, ok := categories[consumable.CategorySupplement]; ok {
		recommendations = append(recommendations,
			"Supplements present: stay within the stated daily dose.")
	}
	if _, ok := categories[consumable.CategoryMedication]; ok {
		recommendations = append(recommendations,
			"Medication present: follow the prescription and check the leaflet for food interactions.")
	}

	return recommendations
}

package knowledge

import "mixlab/internal/consumable"

// Default returns the compiled-in knowledge base used when no
// knowledge.yaml is configured. The data is append-only reference
// material; nothing at evaluation time writes to it.
func Default() *Base {
	base := &Base{
		Version: 1,
		CategoryDefaults: map[string]string{
			"food":       "safe",
			"beverage":   "safe",
			"supplement": "safe",
			"medication": "caution",
			"herb":       "caution",
			"alcohol":    "warning",
			"drug":       "danger",
			"chemical":   "danger",
			"other":      "caution",
		},
		Substances: []Substance{
			{
				Key:            "alcohol",
				Aliases:        []string{"beer", "wine", "vodka", "whiskey", "whisky", "rum", "gin", "tequila", "liquor", "champagne", "cider", "sake"},
				Categories:     []string{"alcohol"},
				Classification: consumable.LevelWarning,
			},
			{
				Key:       "caffeine",
				Aliases:   []string{"coffee", "espresso", "tea", "energy drink", "cola", "caffeine", "guarana", "mate"},
				Stimulant: true,
			},
			{
				Key:            "medication",
				Aliases:        []string{"aspirin", "ibuprofen", "paracetamol", "acetaminophen", "naproxen", "antibiotic", "penicillin", "amoxicillin", "insulin", "warfarin", "statin", "metformin", "antihistamine", "antidepressant", "pill", "tablet"},
				Categories:     []string{"medication"},
				Classification: consumable.LevelCaution,
			},
			{
				Key:            "sedative",
				Aliases:        []string{"valium", "diazepam", "xanax", "alprazolam", "sleeping pill", "melatonin", "sedative"},
				Classification: consumable.LevelCaution,
			},
			{
				Key:            "stimulant",
				Aliases:        []string{"pre-workout", "preworkout", "ephedrine", "amphetamine", "nicotine", "stimulant"},
				Stimulant:      true,
				Classification: consumable.LevelCaution,
			},
			{
				Key:     "grapefruit",
				Aliases: []string{"grapefruit"},
			},
			{
				Key:        "supplement",
				Aliases:    []string{"vitamin", "creatine", "protein powder", "omega-3", "fish oil", "zinc", "magnesium", "iron supplement"},
				Categories: []string{"supplement"},
			},
			{
				Key:        "herb",
				Aliases:    []string{"st john's wort", "ginkgo", "ginseng", "kava", "valerian", "echinacea"},
				Categories: []string{"herb"},
			},
		},
		Interactions: []Rule{
			{
				Between:        []string{"alcohol", "medication"},
				Severity:       "critical",
				Effect:         "alcohol can amplify or block the effect of medication and strain the liver",
				Recommendation: "CRITICAL: never combine alcohol with medication; wait at least 24 hours between them",
			},
			{
				Between:        []string{"alcohol", "sedative"},
				Severity:       "critical",
				Effect:         "combined central nervous system depression can suppress breathing",
				Recommendation: "CRITICAL: alcohol with sedatives can be fatal; do not combine under any circumstances",
			},
			{
				Between:        []string{"alcohol", "caffeine"},
				Severity:       "warning",
				Effect:         "caffeine masks intoxication and promotes overconsumption",
				Recommendation: "Avoid mixing alcohol with caffeinated drinks; the stimulant hides how impaired you are",
			},
			{
				Between:        []string{"grapefruit", "medication"},
				Severity:       "danger",
				Effect:         "grapefruit inhibits the enzymes that metabolize many medications",
				Recommendation: "Grapefruit interferes with medication metabolism; check the leaflet before combining",
			},
			{
				Between:        []string{"caffeine", "medication"},
				Severity:       "warning",
				Effect:         "caffeine can intensify side effects of stimulating medications",
				Recommendation: "Caffeine can interact with medication; space them several hours apart",
			},
			{
				Between:        []string{"herb", "medication"},
				Severity:       "warning",
				Effect:         "herbal preparations can alter medication absorption and potency",
				Recommendation: "Herbal supplements can interact with medication; consult a pharmacist",
			},
			{
				Between:        []string{"caffeine", "stimulant"},
				Severity:       "warning",
				Effect:         "stacked stimulants raise heart rate and blood pressure",
				Recommendation: "Avoid stacking multiple stimulants in one sitting",
			},
		},
		SafeCombinations: [][]string{
			{"supplement", "supplement"},
		},
		Indicators: Indicators{
			Protein: []string{"protein", "chicken", "beef", "egg", "fish", "tofu", "whey", "turkey", "pork", "beans"},
			Carb:    []string{"rice", "bread", "pasta", "potato", "oat", "banana", "noodle", "cereal", "quinoa"},
			Sweet:   []string{"chocolate", "candy", "sugar", "honey", "caramel", "vanilla", "cake", "cookie", "ice cream"},
			Savory:  []string{"chili", "pepper", "garlic", "onion", "pickle", "cheese", "bacon", "soy sauce", "curry"},
		},
	}
	base.compile()
	return base
}

package scoring

import (
	"fmt"

	"mixlab/internal/consumable"
)

// Disclaimer always leads the warning list for any evaluation.
const Disclaimer = "This evaluation is informational only and is not medical advice."

const stimulantThreshold = 2

// Warnings produces the warning list for a combination. Order is fixed:
// disclaimer, knowledge-base interaction warnings, dangerous-level warning,
// stimulant-overload warning, low-confidence warning.
func (e *Engine) Warnings(items []consumable.Consumable) []string {
	warnings := []string{Disclaimer}

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if rule, found := e.base.Interaction(items[i], items[j]); found {
				warnings = append(warnings, rule.Recommendation)
			}
		}
	}

	// The dangerous-level warning fires on exactly danger and lethal.
	// Critical items are penalized in the safety score but do not trip
	// this warning; the asymmetry is longstanding observed behavior.
	for _, item := range items {
		if item.SafetyLevel == consumable.LevelDanger || item.SafetyLevel == consumable.LevelLethal {
			warnings = append(warnings, fmt.Sprintf("DANGER: %s is classified %s; do not consume without professional guidance", displayName(item), item.SafetyLevel))
			break
		}
	}

	stimulants := 0
	for _, item := range items {
		if e.base.IsStimulant(item) {
			stimulants++
		}
	}
	if stimulants >= stimulantThreshold {
		warnings = append(warnings, fmt.Sprintf("Stimulant overload: %d stimulant items in one combination can strain the cardiovascular system", stimulants))
	}

	for _, item := range items {
		if item.SafetyLevel == consumable.LevelCaution || item.Source == consumable.SourceManual {
			warnings = append(warnings, fmt.Sprintf("Low confidence: data for %s is uncertain; treat this evaluation as approximate", displayName(item)))
			break
		}
	}

	return warnings
}

func displayName(item consumable.Consumable) string {
	if item.Name == "" {
		return "(unnamed item)"
	}
	return item.Name
}

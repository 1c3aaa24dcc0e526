// Package scoring computes safety, effectiveness, and novelty scores for
// sets of consumables. Every operation is a pure function over its inputs:
// malformed records degrade the score instead of failing, and no method
// ever returns an error.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"mixlab/internal/consumable"
	"mixlab/internal/knowledge"
)

// Engine evaluates consumable combinations against a knowledge base. The
// base is read-only shared reference data, so one Engine is safe for
// concurrent use.
type Engine struct {
	base *knowledge.Base
}

func NewEngine(base *knowledge.Base) *Engine {
	if base == nil {
		base = knowledge.Default()
	}
	return &Engine{base: base}
}

// Result is the outcome of one evaluation. It is created fresh on every
// Evaluate call and has no identity beyond it.
type Result struct {
	Safety          int      `json:"safety"`
	Effectiveness   int      `json:"effectiveness"`
	Novelty         int      `json:"novelty"`
	Overall         int      `json:"overall"`
	Level           string   `json:"level"`
	Description     string   `json:"description"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// Penalties per resolved safety level.
var levelPenalties = map[consumable.SafetyLevel]int{
	consumable.LevelSafe:     0,
	consumable.LevelCaution:  10,
	consumable.LevelWarning:  25,
	consumable.LevelDanger:   50,
	consumable.LevelCritical: 75,
	consumable.LevelLethal:   100,
}

const (
	invalidItemPenalty     = 20
	dangerousPairPenalty   = 50
	alcoholWithMedsPenalty = 40
	alcoholAlonePenalty    = 15
	multipleMedsPenalty    = 25
	singleMedPenalty       = 10
)

// SafetyScore computes the 0-100 safety score for a combination. An empty
// set scores 100.
func (e *Engine) SafetyScore(items []consumable.Consumable) int {
	score := 100

	for _, item := range items {
		if report := consumable.Validate(item); !report.Valid {
			score -= invalidItemPenalty
		}
	}

	for _, item := range items {
		level := e.base.Classify(item)
		score -= levelPenalties[level]
	}

	// One flat penalty for the first dangerous pair found; additional
	// dangerous pairs do not stack in this pass.
pairs:
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if _, found := e.base.Interaction(items[i], items[j]); found {
				score -= dangerousPairPenalty
				break pairs
			}
		}
	}

	// The alcohol and medication penalties below are computed independently
	// of the interaction graph and may overlap with it. The stacking is
	// intentional and pinned by tests.
	hasAlcohol := e.anyResolvesTo(items, "alcohol")
	medications := e.countResolving(items, "medication")

	if hasAlcohol && medications > 0 {
		score -= alcoholWithMedsPenalty
	} else if hasAlcohol {
		score -= alcoholAlonePenalty
	}

	switch {
	case medications >= 2:
		score -= multipleMedsPenalty
	case medications == 1:
		score -= singleMedPenalty
	}

	return clamp(score)
}

// EffectivenessScore computes the 0-100 effectiveness score. An empty set
// scores exactly 50.
func (e *Engine) EffectivenessScore(items []consumable.Consumable) int {
	score := 50
	unique := uniqueCategories(items)

	diversity := len(unique) * 5
	if diversity > 20 {
		diversity = 20
	}
	score += diversity

	if e.anyMatchesIndicator(items, knowledge.IndicatorProtein) && e.anyMatchesIndicator(items, knowledge.IndicatorCarb) {
		score += 15
	}

	compatibility := len(unique) * 3
	if compatibility > 15 {
		compatibility = 15
	}
	score += compatibility

	return clamp(score)
}

// NoveltyScore computes the 0-100 novelty score. An empty set scores 0.
func (e *Engine) NoveltyScore(items []consumable.Consumable) int {
	score := len(uniqueCategories(items)) * 15

	if e.anyResolvesTo(items, "alcohol") && e.anyResolvesTo(items, "supplement") {
		score += 20
	}

	if e.anyMatchesIndicator(items, knowledge.IndicatorSweet) && e.anyMatchesIndicator(items, knowledge.IndicatorSavory) {
		score += 15
	}

	return clamp(score)
}

// Evaluate scores a combination and assembles the full result, including
// warnings and recommendations.
func (e *Engine) Evaluate(items []consumable.Consumable) Result {
	safety := e.SafetyScore(items)
	effectiveness := e.EffectivenessScore(items)
	novelty := e.NoveltyScore(items)
	overall := int(math.Round(float64(safety+effectiveness+novelty) / 3.0))

	return Result{
		Safety:          safety,
		Effectiveness:   effectiveness,
		Novelty:         novelty,
		Overall:         overall,
		Level:           levelLabel(safety),
		Description:     describe(items, safety),
		Warnings:        e.Warnings(items),
		Recommendations: e.Recommendations(items, safety),
	}
}

func levelLabel(safety int) string {
	switch {
	case safety >= 80:
		return string(consumable.LevelSafe)
	case safety >= 60:
		return string(consumable.LevelCaution)
	case safety >= 40:
		return string(consumable.LevelWarning)
	case safety >= 20:
		return string(consumable.LevelDanger)
	default:
		return string(consumable.LevelCritical)
	}
}

func describe(items []consumable.Consumable, safety int) string {
	if len(items) == 0 {
		return "Nothing to evaluate."
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = "(unnamed)"
		}
		names = append(names, name)
	}
	combination := strings.Join(names, " + ")

	switch {
	case safety >= 80:
		return fmt.Sprintf("Combination of %s looks safe.", combination)
	case safety >= 60:
		return fmt.Sprintf("Combination of %s warrants some caution.", combination)
	case safety >= 40:
		return fmt.Sprintf("Combination of %s carries notable risk.", combination)
	default:
		return fmt.Sprintf("Combination of %s is dangerous.", combination)
	}
}

func (e *Engine) anyResolvesTo(items []consumable.Consumable, key string) bool {
	return e.countResolving(items, key) > 0
}

func (e *Engine) countResolving(items []consumable.Consumable, key string) int {
	count := 0
	for _, item := range items {
		for _, itemKey := range e.base.SubstanceKeys(item) {
			if itemKey == key {
				count++
				break
			}
		}
	}
	return count
}

func (e *Engine) anyMatchesIndicator(items []consumable.Consumable, kind knowledge.IndicatorKind) bool {
	for _, item := range items {
		if e.base.MatchesIndicator(kind, item.Name) {
			return true
		}
	}
	return false
}

func uniqueCategories(items []consumable.Consumable) map[consumable.Category]int {
	unique := make(map[consumable.Category]int)
	for _, item := range items {
		unique[item.Category]++
	}
	return unique
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

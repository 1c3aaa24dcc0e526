// Package knowledge holds the static reference data the scoring engine
// consults: per-category safety classifications, substance alias tables,
// and the pairwise dangerous-interaction graph. A Base is immutable after
// construction and safe to share across concurrent callers.
package knowledge

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mixlab/internal/consumable"
)

// Substance groups the surface forms and categories that resolve to a
// single substance key in the interaction graph. A non-empty
// Classification overrides the item-category default for any consumable
// whose name matches one of the aliases.
type Substance struct {
	Key            string                 `yaml:"key"`
	Aliases        []string               `yaml:"aliases"`
	Categories     []string               `yaml:"categories"`
	Stimulant      bool                   `yaml:"stimulant"`
	Classification consumable.SafetyLevel `yaml:"classification,omitempty"`
}

// Rule is one edge in the dangerous-interaction graph.
type Rule struct {
	Between        []string `yaml:"between"`
	Severity       string   `yaml:"severity"`
	Effect         string   `yaml:"effect"`
	Recommendation string   `yaml:"recommendation"`
}

// Indicators are name-substring word lists used by the scoring heuristics.
type Indicators struct {
	Protein []string `yaml:"protein"`
	Carb    []string `yaml:"carb"`
	Sweet   []string `yaml:"sweet"`
	Savory  []string `yaml:"savory"`
}

// Base is the full knowledge base. The exported fields mirror the YAML
// document; the unexported indexes are compiled once on load.
type Base struct {
	Version          int               `yaml:"version"`
	CategoryDefaults map[string]string `yaml:"category_defaults"`
	Substances       []Substance       `yaml:"substances"`
	Interactions     []Rule            `yaml:"interactions"`
	SafeCombinations [][]string        `yaml:"safe_combinations"`
	Indicators       Indicators        `yaml:"indicators"`

	defaults    map[consumable.Category]consumable.SafetyLevel
	byKey       map[string]*Substance
	ruleIndex   map[string]*Rule
	safeIndex   map[string]struct{}
	substanceIx []*Substance
}

// Load reads a knowledge base from a YAML file, validates it, and compiles
// the lookup indexes.
func Load(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}

	var base Base
	if err := yaml.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}

	if err := validateBase(&base); err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}

	base.compile()
	return &base, nil
}

func validateBase(b *Base) error {
	if b.Version != 1 {
		return fmt.Errorf("unsupported version: %d", b.Version)
	}

	for category, level := range b.CategoryDefaults {
		if consumable.ParseCategory(category) == consumable.CategoryOther && category != string(consumable.CategoryOther) {
			return fmt.Errorf("category default references unknown category: %s", category)
		}
		if consumable.ParseSafetyLevel(level) == consumable.LevelCaution && !strings.EqualFold(level, string(consumable.LevelCaution)) {
			return fmt.Errorf("category default %s has unknown safety level: %s", category, level)
		}
	}

	keys := make(map[string]struct{})
	for i, substance := range b.Substances {
		key := strings.ToLower(strings.TrimSpace(substance.Key))
		if key == "" {
			return fmt.Errorf("substance %d key is required", i)
		}
		if _, exists := keys[key]; exists {
			return fmt.Errorf("duplicate substance key: %s", substance.Key)
		}
		keys[key] = struct{}{}

		classification := string(substance.Classification)
		if classification != "" && consumable.ParseSafetyLevel(classification) == consumable.LevelCaution && !strings.EqualFold(classification, string(consumable.LevelCaution)) {
			return fmt.Errorf("substance %s has unknown classification: %s", substance.Key, classification)
		}
	}

	for i, rule := range b.Interactions {
		if len(rule.Between) != 2 {
			return fmt.Errorf("interaction %d must name exactly two substances", i)
		}
		for _, key := range rule.Between {
			if _, ok := keys[strings.ToLower(key)]; !ok {
				return fmt.Errorf("interaction %d references unknown substance: %s", i, key)
			}
		}
		if strings.TrimSpace(rule.Recommendation) == "" {
			return fmt.Errorf("interaction %d recommendation is required", i)
		}
	}

	for i, pair := range b.SafeCombinations {
		if len(pair) != 2 {
			return fmt.Errorf("safe combination %d must name exactly two substances", i)
		}
	}

	return nil
}

func (b *Base) compile() {
	b.defaults = make(map[consumable.Category]consumable.SafetyLevel, len(b.CategoryDefaults))
	for category, level := range b.CategoryDefaults {
		b.defaults[consumable.ParseCategory(category)] = consumable.ParseSafetyLevel(level)
	}

	b.byKey = make(map[string]*Substance, len(b.Substances))
	b.substanceIx = make([]*Substance, 0, len(b.Substances))
	for i := range b.Substances {
		substance := &b.Substances[i]
		substance.Classification = consumable.ParseSafetyLevel(string(substance.Classification))
		b.byKey[strings.ToLower(substance.Key)] = substance
		b.substanceIx = append(b.substanceIx, substance)
	}

	b.ruleIndex = make(map[string]*Rule, len(b.Interactions))
	for i := range b.Interactions {
		rule := &b.Interactions[i]
		b.ruleIndex[pairKey(rule.Between[0], rule.Between[1])] = rule
	}

	b.safeIndex = make(map[string]struct{}, len(b.SafeCombinations))
	for _, pair := range b.SafeCombinations {
		b.safeIndex[pairKey(pair[0], pair[1])] = struct{}{}
	}
}

func pairKey(a, b string) string {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// SubstanceKeys resolves the substance keys a consumable maps onto, via
// name-substring alias matching and category membership.
func (b *Base) SubstanceKeys(c consumable.Consumable) []string {
	name := strings.ToLower(c.Name)
	category := string(c.Category)

	var keys []string
	for _, substance := range b.substanceIx {
		matched := false
		for _, alias := range substance.Aliases {
			if alias != "" && strings.Contains(name, strings.ToLower(alias)) {
				matched = true
				break
			}
		}
		if !matched {
			for _, substanceCategory := range substance.Categories {
				if strings.EqualFold(substanceCategory, category) {
					matched = true
					break
				}
			}
		}
		if matched {
			keys = append(keys, strings.ToLower(substance.Key))
		}
	}
	return keys
}

// CategoryDefault returns the medical classification for a category when no
// substance-specific information applies. Unknown categories classify as
// caution, the most conservative applicable default.
func (b *Base) CategoryDefault(category consumable.Category) consumable.SafetyLevel {
	if level, ok := b.defaults[category]; ok {
		return level
	}
	return consumable.LevelCaution
}

// Classify resolves the effective safety level of a consumable. The
// medical classification comes from a substance-name substring match when
// one exists, else from the item-category default; it is then reconciled
// with the declared level by taking the more restrictive of the two.
func (b *Base) Classify(c consumable.Consumable) consumable.SafetyLevel {
	medical, ok := b.substanceClassification(c.Name)
	if !ok {
		medical = b.CategoryDefault(c.Category)
	}
	return consumable.MoreRestrictive(medical, c.SafetyLevel)
}

// substanceClassification finds the most restrictive classification among
// substances whose aliases appear in the name. Substances without a
// classification never contribute.
func (b *Base) substanceClassification(name string) (consumable.SafetyLevel, bool) {
	name = strings.ToLower(name)

	level := consumable.LevelUnknown
	found := false
	for _, substance := range b.substanceIx {
		if substance.Classification == consumable.LevelUnknown {
			continue
		}
		for _, alias := range substance.Aliases {
			if alias != "" && strings.Contains(name, strings.ToLower(alias)) {
				level = consumable.MoreRestrictive(level, substance.Classification)
				found = true
				break
			}
		}
	}
	return level, found
}

// Interaction looks up the dangerous-interaction rule covering the two
// consumables, if any. Pairs on the safe-combination allow-list never
// report a rule.
func (b *Base) Interaction(first, second consumable.Consumable) (*Rule, bool) {
	for _, firstKey := range b.SubstanceKeys(first) {
		for _, secondKey := range b.SubstanceKeys(second) {
			key := pairKey(firstKey, secondKey)
			if _, safe := b.safeIndex[key]; safe {
				continue
			}
			if rule, ok := b.ruleIndex[key]; ok {
				return rule, true
			}
		}
	}
	return nil, false
}

// IsStimulant reports whether the consumable resolves to any substance
// flagged as a stimulant.
func (b *Base) IsStimulant(c consumable.Consumable) bool {
	for _, key := range b.SubstanceKeys(c) {
		if substance, ok := b.byKey[key]; ok && substance.Stimulant {
			return true
		}
	}
	return false
}

// IndicatorKind selects one of the name-substring heuristic word lists.
type IndicatorKind string

const (
	IndicatorProtein IndicatorKind = "protein"
	IndicatorCarb    IndicatorKind = "carb"
	IndicatorSweet   IndicatorKind = "sweet"
	IndicatorSavory  IndicatorKind = "savory"
)

// MatchesIndicator reports whether the name contains any word from the
// selected indicator list.
func (b *Base) MatchesIndicator(kind IndicatorKind, name string) bool {
	var words []string
	switch kind {
	case IndicatorProtein:
		words = b.Indicators.Protein
	case IndicatorCarb:
		words = b.Indicators.Carb
	case IndicatorSweet:
		words = b.Indicators.Sweet
	case IndicatorSavory:
		words = b.Indicators.Savory
	}

	name = strings.ToLower(name)
	for _, word := range words {
		if word != "" && strings.Contains(name, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

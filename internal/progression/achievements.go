package progression

import (
	"strings"
	"time"
)

// AchievementDef is one entry in the injected achievement table. The
// condition behind each definition is keyed by ID in the tracker.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	MaxProgress int
}

// perfect is the overall score an experiment's results must all reach for
// the perfectionist condition.
const perfectOverall = 100

// dangerScore is the safety score below which an experiment counts as a
// close call for the daredevil condition.
const dangerScore = 30

// Definitions returns the built-in achievement table.
func Definitions() []AchievementDef {
	return []AchievementDef{
		{ID: "first-steps", Name: "First Steps", Description: "Complete your first experiment", Rarity: RarityCommon, MaxProgress: 1},
		{ID: "lab-rat", Name: "Lab Rat", Description: "Complete 10 experiments", Rarity: RarityCommon, MaxProgress: 10},
		{ID: "mad-scientist", Name: "Mad Scientist", Description: "Complete 50 experiments", Rarity: RarityEpic, MaxProgress: 50},
		{ID: "taster", Name: "Taster", Description: "Use 10 different consumables", Rarity: RarityCommon, MaxProgress: 10},
		{ID: "connoisseur", Name: "Connoisseur", Description: "Use 25 different consumables", Rarity: RarityRare, MaxProgress: 25},
		{ID: "category-collector", Name: "Category Collector", Description: "Use consumables from 6 different categories", Rarity: RarityRare, MaxProgress: 6},
		{ID: "perfectionist", Name: "Perfectionist", Description: "Complete 3 experiments with perfect scores", Rarity: RarityEpic, MaxProgress: 3},
		{ID: "daredevil", Name: "Daredevil", Description: "Survive 3 dangerously scored experiments", Rarity: RarityRare, MaxProgress: 3},
		{ID: "streak-week", Name: "Streak Week", Description: "Evaluate something 7 days in a row", Rarity: RarityRare, MaxProgress: 7},
		{ID: "dedicated", Name: "Dedicated", Description: "Evaluate something 30 days in a row", Rarity: RarityLegendary, MaxProgress: 30},
	}
}

// Tracker evaluates achievement conditions against history and stats. The
// definition table is read-only shared data; one Tracker serves all
// callers.
type Tracker struct {
	defs []AchievementDef
}

func NewTracker(defs []AchievementDef) *Tracker {
	if defs == nil {
		defs = Definitions()
	}
	return &Tracker{defs: defs}
}

func (t *Tracker) Definitions() []AchievementDef {
	return append([]AchievementDef(nil), t.defs...)
}

// Unlock returns the achievements that newly cross their threshold for the
// given stats and history. Achievements already in the profile's unlocked
// set are skipped entirely: unlocking is one-way.
func (t *Tracker) Unlock(profile Profile, history []Experiment, now time.Time) []Achievement {
	var unlocked []Achievement
	for _, def := range t.defs {
		if profile.Unlocked(def.ID) {
			continue
		}
		progress := t.Progress(def, profile, history)
		if progress >= def.MaxProgress {
			unlockedAt := now
			unlocked = append(unlocked, Achievement{
				ID:          def.ID,
				Name:        def.Name,
				Description: def.Description,
				Rarity:      def.Rarity,
				Progress:    def.MaxProgress,
				MaxProgress: def.MaxProgress,
				UnlockedAt:  &unlockedAt,
			})
		}
	}
	return unlocked
}

// Progress computes the current progress value for one definition. Unknown
// IDs report zero progress and therefore never unlock.
func (t *Tracker) Progress(def AchievementDef, profile Profile, history []Experiment) int {
	switch def.ID {
	case "first-steps", "lab-rat", "mad-scientist":
		return len(history)
	case "taster", "connoisseur":
		return uniqueConsumables(history)
	case "category-collector":
		return uniqueExperimentCategories(history)
	case "perfectionist":
		return countExperiments(history, allPerfect)
	case "daredevil":
		return countExperiments(history, anyDangerous)
	case "streak-week", "dedicated":
		return profile.Streak
	default:
		return 0
	}
}

func uniqueConsumables(history []Experiment) int {
	seen := make(map[string]struct{})
	for _, experiment := range history {
		for _, item := range experiment.Consumables {
			name := strings.ToLower(strings.TrimSpace(item.Name))
			if name == "" {
				continue
			}
			seen[name] = struct{}{}
		}
	}
	return len(seen)
}

func uniqueExperimentCategories(history []Experiment) int {
	seen := make(map[string]struct{})
	for _, experiment := range history {
		for _, item := range experiment.Consumables {
			category := strings.TrimSpace(string(item.Category))
			if category == "" {
				continue
			}
			seen[category] = struct{}{}
		}
	}
	return len(seen)
}

func countExperiments(history []Experiment, matches func(Experiment) bool) int {
	count := 0
	for _, experiment := range history {
		if matches(experiment) {
			count++
		}
	}
	return count
}

func allPerfect(experiment Experiment) bool {
	if len(experiment.Results) == 0 {
		return false
	}
	for _, result := range experiment.Results {
		if result.Overall < perfectOverall {
			return false
		}
	}
	return true
}

func anyDangerous(experiment Experiment) bool {
	for _, result := range experiment.Results {
		if result.Safety < dangerScore {
			return true
		}
	}
	return false
}

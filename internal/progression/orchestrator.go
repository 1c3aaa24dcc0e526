package progression

import (
	"sort"
	"strings"
	"time"

	"mixlab/internal/consumable"
)

const favoriteCategoryCount = 3

// Outcome is everything Process produces for one completed evaluation.
type Outcome struct {
	Profile   Profile       `json:"profile"`
	Unlocked  []Achievement `json:"unlocked"`
	LeveledUp bool          `json:"leveled_up"`
	XPGained  int           `json:"xp_gained"`
}

// Orchestrator composes the experience calculator, level resolver,
// achievement tracker, and streak tracker into a single operation.
type Orchestrator struct {
	tracker *Tracker
}

func NewOrchestrator(tracker *Tracker) *Orchestrator {
	if tracker == nil {
		tracker = NewTracker(nil)
	}
	return &Orchestrator{tracker: tracker}
}

func (o *Orchestrator) Tracker() *Tracker {
	return o.tracker
}

// Process folds one completed experiment into the profile. The caller's
// profile and history values are never written to; the returned outcome
// carries fresh copies of everything that changed.
func (o *Orchestrator) Process(profile Profile, experiment Experiment, history []Experiment, now time.Time) Outcome {
	xp := ExperienceFor(experiment)

	full := make([]Experiment, 0, len(history)+1)
	full = append(full, history...)
	full = append(full, experiment)

	updated := cloneProfile(profile)
	updated.Experience += xp
	updated.Level = LevelFor(updated.Experience)
	updated.Experiments = len(full)
	updated.Discoveries = uniqueConsumables(full)
	updated.FavoriteCategories = favoriteCategories(full, favoriteCategoryCount)
	updated.Streak = Streak(full, now)

	unlocked := o.tracker.Unlock(updated, full, now)
	updated.Achievements = append(updated.Achievements, unlocked...)

	return Outcome{
		Profile:   updated,
		Unlocked:  unlocked,
		LeveledUp: updated.Level > profile.Level,
		XPGained:  xp,
	}
}

// favoriteCategories ranks categories by how often they appear across the
// history, most frequent first, ties broken alphabetically for stable
// output.
func favoriteCategories(history []Experiment, limit int) []consumable.Category {
	counts := make(map[consumable.Category]int)
	for _, experiment := range history {
		for _, item := range experiment.Consumables {
			category := consumable.Category(strings.TrimSpace(string(item.Category)))
			if category == "" {
				continue
			}
			counts[category]++
		}
	}

	ranked := make([]consumable.Category, 0, len(counts))
	for category := range counts {
		ranked = append(ranked, category)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

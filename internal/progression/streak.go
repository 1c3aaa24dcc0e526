package progression

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Streak counts consecutive calendar days with at least one experiment,
// walking backward from the day of now. A one-day gap under the walking
// cursor keeps the streak alive; anything larger stops the walk.
func Streak(history []Experiment, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{})
	for _, experiment := range history {
		seen[dateOf(experiment.CreatedAt.In(now.Location()))] = struct{}{}
	}

	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	cursor := dateOf(now)
	for _, day := range days {
		// Round so daylight-saving shifts cannot turn a one-day gap
		// into zero or two.
		gap := int(math.Round(cursor.Sub(day).Hours() / 24))
		if gap < 0 || gap > 1 {
			break
		}
		streak++
		cursor = day
	}
	return streak
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Milestone kinds, in the order they are considered.
const (
	MilestoneLevel       = "level"
	MilestoneExperiments = "experiments"
	MilestoneStreak      = "streak"
	MilestoneNone        = "none"
)

var experimentMilestones = []int{10, 25, 50, 100, 250}
var streakMilestones = []int{3, 7, 14, 30, 100}

// Milestone is the next unmet progression goal.
type Milestone struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Target      int    `json:"target"`
	Remaining   int    `json:"remaining"`
}

// NextMilestone projects the closest goal: level progress first, then
// experiment-count tiers, then streak tiers. When everything is exhausted
// the milestone kind is "none".
func NextMilestone(profile Profile, history []Experiment) Milestone {
	progress := ProgressToNext(profile.Experience, profile.Level)
	if progress.XPNeeded > 0 {
		return Milestone{
			Kind:        MilestoneLevel,
			Description: fmt.Sprintf("Reach level %d", profile.Level+1),
			Target:      profile.Level + 1,
			Remaining:   progress.XPNeeded,
		}
	}

	for _, target := range experimentMilestones {
		if len(history) < target {
			return Milestone{
				Kind:        MilestoneExperiments,
				Description: fmt.Sprintf("Complete %d experiments", target),
				Target:      target,
				Remaining:   target - len(history),
			}
		}
	}

	for _, target := range streakMilestones {
		if profile.Streak < target {
			return Milestone{
				Kind:        MilestoneStreak,
				Description: fmt.Sprintf("Keep a %d-day streak", target),
				Target:      target,
				Remaining:   target - profile.Streak,
			}
		}
	}

	return Milestone{Kind: MilestoneNone, Description: "All milestones reached"}
}

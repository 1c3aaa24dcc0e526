// Package progression converts completed evaluations into experience,
// levels, achievements, and streaks. Every operation returns new values
// rather than mutating its arguments, so concurrent sessions can share
// nothing but the achievement definitions.
package progression

import (
	"time"

	"mixlab/internal/consumable"
	"mixlab/internal/scoring"
)

// Rarity grades how hard an achievement is to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is an unlocked or in-progress achievement instance.
// Once unlocked it is never re-evaluated or revoked.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Rarity      Rarity     `json:"rarity"`
	Progress    int        `json:"progress"`
	MaxProgress int        `json:"max_progress"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// Experiment is one completed evaluation: the consumables used, the
// results produced, and when it happened. History is append-only from this
// package's perspective.
type Experiment struct {
	ID          string                  `json:"id"`
	Description string                  `json:"description"`
	Consumables []consumable.Consumable `json:"consumables"`
	Results     []scoring.Result        `json:"results"`
	CreatedAt   time.Time               `json:"created_at"`
	Success     bool                    `json:"success"`
	Score       int                     `json:"score"`
}

// Profile is the mutable aggregate owned by the caller. This package only
// ever returns fresh Profile values; it never writes through one.
type Profile struct {
	Name               string                `json:"name"`
	Level              int                   `json:"level"`
	Experience         int                   `json:"experience"`
	Experiments        int                   `json:"experiments"`
	Discoveries        int                   `json:"discoveries"`
	Achievements       []Achievement         `json:"achievements"`
	Streak             int                   `json:"streak"`
	PlayTime           time.Duration         `json:"play_time"`
	FavoriteCategories []consumable.Category `json:"favorite_categories"`
}

// NewProfile returns a level-1 profile with no history.
func NewProfile(name string) Profile {
	return Profile{Name: name, Level: 1}
}

// Unlocked reports whether the achievement with the given ID is already in
// the profile's unlocked set.
func (p Profile) Unlocked(achievementID string) bool {
	for _, achievement := range p.Achievements {
		if achievement.ID == achievementID {
			return true
		}
	}
	return false
}

func cloneProfile(p Profile) Profile {
	clone := p
	clone.Achievements = append([]Achievement(nil), p.Achievements...)
	clone.FavoriteCategories = append([]consumable.Category(nil), p.FavoriteCategories...)
	return clone
}

package progression

// levelThresholds[i] is the cumulative experience required for level i+1.
// The sequence is strictly increasing; a test pins that property.
var levelThresholds = []int{
	0,     // level 1
	100,   // level 2
	250,   // level 3
	450,   // level 4
	700,   // level 5
	1000,  // level 6
	1350,  // level 7
	1750,  // level 8
	2200,  // level 9
	2700,  // level 10
	3250,  // level 11
	3850,  // level 12
	4500,  // level 13
	5200,  // level 14
	5950,  // level 15
	6750,  // level 16
	7600,  // level 17
	8500,  // level 18
	9450,  // level 19
	10450, // level 20
}

// MaxLevel is the highest defined level; experience beyond its threshold
// does not advance the level further.
const MaxLevel = 20

// LevelFor returns the highest level whose threshold is at or below the
// given cumulative experience. Negative experience maps to level 1.
func LevelFor(experience int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if experience >= threshold {
			level = i + 1
		}
	}
	return level
}

// Progress describes how far along a level a profile is.
type Progress struct {
	CurrentLevelXP int `json:"current_level_xp"`
	NextLevelXP    int `json:"next_level_xp"`
	Percent        int `json:"percent"`
	XPNeeded       int `json:"xp_needed"`
}

// ProgressToNext computes progress from the current level toward the next
// one. At MaxLevel the next threshold saturates to the current one,
// progress reads 100%, and no further experience is needed.
func ProgressToNext(experience, level int) Progress {
	if level < 1 {
		level = 1
	}
	if level >= MaxLevel {
		top := levelThresholds[MaxLevel-1]
		return Progress{CurrentLevelXP: top, NextLevelXP: top, Percent: 100, XPNeeded: 0}
	}

	current := levelThresholds[level-1]
	next := levelThresholds[level]

	percent := (experience - current) * 100 / (next - current)
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	needed := next - experience
	if needed < 0 {
		needed = 0
	}

	return Progress{
		CurrentLevelXP: current,
		NextLevelXP:    next,
		Percent:        percent,
		XPNeeded:       needed,
	}
}

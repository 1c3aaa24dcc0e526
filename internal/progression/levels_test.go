package progression

import "testing"

func TestLevelThresholdsStrictlyIncrease(t *testing.T) {
	if len(levelThresholds) != MaxLevel {
		t.Fatalf("expected %d thresholds, got %d", MaxLevel, len(levelThresholds))
	}
	for i := 1; i < len(levelThresholds); i++ {
		if levelThresholds[i] <= levelThresholds[i-1] {
			t.Fatalf("threshold %d (%d) does not exceed threshold %d (%d)", i, levelThresholds[i], i-1, levelThresholds[i-1])
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		experience int
		expected   int
	}{
		{experience: -5, expected: 1},
		{experience: 0, expected: 1},
		{experience: 99, expected: 1},
		{experience: 100, expected: 2},
		{experience: 249, expected: 2},
		{experience: 250, expected: 3},
		{experience: 10449, expected: 19},
		{experience: 10450, expected: 20},
		{experience: 999999, expected: 20},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.experience); got != tt.expected {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.experience, got, tt.expected)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	previous := 0
	for xp := 0; xp <= 11000; xp += 50 {
		level := LevelFor(xp)
		if level < previous {
			t.Fatalf("LevelFor(%d) = %d dropped below %d", xp, level, previous)
		}
		previous = level
	}
}

func TestProgressToNext(t *testing.T) {
	t.Run("halfway through level one", func(t *testing.T) {
		progress := ProgressToNext(50, 1)
		if progress.CurrentLevelXP != 0 || progress.NextLevelXP != 100 {
			t.Fatalf("unexpected bounds: %+v", progress)
		}
		if progress.Percent != 50 {
			t.Fatalf("Percent = %d, want 50", progress.Percent)
		}
		if progress.XPNeeded != 50 {
			t.Fatalf("XPNeeded = %d, want 50", progress.XPNeeded)
		}
	})

	t.Run("max level saturates", func(t *testing.T) {
		progress := ProgressToNext(50000, MaxLevel)
		if progress.Percent != 100 {
			t.Fatalf("Percent = %d, want 100", progress.Percent)
		}
		if progress.XPNeeded != 0 {
			t.Fatalf("XPNeeded = %d, want 0", progress.XPNeeded)
		}
	})

	t.Run("level below one clamps", func(t *testing.T) {
		progress := ProgressToNext(0, 0)
		if progress.NextLevelXP != 100 {
			t.Fatalf("NextLevelXP = %d, want 100", progress.NextLevelXP)
		}
	})

	t.Run("percent never escapes its bounds", func(t *testing.T) {
		low := ProgressToNext(-500, 1)
		if low.Percent != 0 {
			t.Fatalf("Percent = %d, want 0", low.Percent)
		}
		high := ProgressToNext(5000, 2)
		if high.Percent != 100 {
			t.Fatalf("Percent = %d, want 100", high.Percent)
		}
	})
}

package consumable

import "testing"

func TestSafetyLevelOrdering(t *testing.T) {
	ordered := []SafetyLevel{LevelSafe, LevelCaution, LevelWarning, LevelDanger, LevelCritical, LevelLethal}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Rank() <= ordered[i-1].Rank() {
			t.Fatalf("expected %s to rank above %s", ordered[i], ordered[i-1])
		}
	}
}

func TestMoreRestrictive(t *testing.T) {
	tests := []struct {
		name     string
		a, b     SafetyLevel
		expected SafetyLevel
	}{
		{name: "safe vs warning", a: LevelSafe, b: LevelWarning, expected: LevelWarning},
		{name: "lethal vs caution", a: LevelLethal, b: LevelCaution, expected: LevelLethal},
		{name: "equal levels", a: LevelDanger, b: LevelDanger, expected: LevelDanger},
		{name: "unknown vs caution", a: LevelUnknown, b: LevelCaution, expected: LevelCaution},
		{name: "critical vs danger", a: LevelCritical, b: LevelDanger, expected: LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoreRestrictive(tt.a, tt.b); got != tt.expected {
				t.Errorf("MoreRestrictive(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if got := ParseCategory("  Medication "); got != CategoryMedication {
		t.Fatalf("expected medication, got %s", got)
	}
	if got := ParseCategory("plasma"); got != CategoryOther {
		t.Fatalf("expected other for unknown category, got %s", got)
	}
}

func TestParseSafetyLevel(t *testing.T) {
	if got := ParseSafetyLevel("LETHAL"); got != LevelLethal {
		t.Fatalf("expected lethal, got %s", got)
	}
	if got := ParseSafetyLevel("spicy"); got != LevelCaution {
		t.Fatalf("expected caution for unknown level, got %s", got)
	}
	if got := ParseSafetyLevel(""); got != LevelUnknown {
		t.Fatalf("expected unknown for empty level, got %q", got)
	}
}

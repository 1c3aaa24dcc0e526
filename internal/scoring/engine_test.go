package scoring

import (
	"math"
	"testing"

	"mixlab/internal/consumable"
)

func TestSafetyScore(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("empty set scores 100", func(t *testing.T) {
		if got := engine.SafetyScore(nil); got != 100 {
			t.Fatalf("SafetyScore(nil) = %d, want 100", got)
		}
	})

	t.Run("plain foods keep a perfect score", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "apple", Category: consumable.CategoryFood},
			{Name: "banana", Category: consumable.CategoryFood},
		}
		if got := engine.SafetyScore(items); got != 100 {
			t.Fatalf("SafetyScore = %d, want 100", got)
		}
	})

	t.Run("alcohol with medication clamps to zero", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "beer", Category: consumable.CategoryAlcohol},
			{Name: "aspirin", Category: consumable.CategoryMedication},
		}
		got := engine.SafetyScore(items)
		if got != 0 {
			t.Fatalf("SafetyScore = %d, want 0", got)
		}
	})

	t.Run("invalid item costs twenty points", func(t *testing.T) {
		items := []consumable.Consumable{{Category: consumable.CategoryFood}}
		if got := engine.SafetyScore(items); got != 80 {
			t.Fatalf("SafetyScore = %d, want 80", got)
		}
	})

	t.Run("name outweighs a mild category", func(t *testing.T) {
		// A declared beverage whose name resolves to alcohol is charged the
		// alcohol classification, not the beverage default.
		items := []consumable.Consumable{{Name: "vodka", Category: consumable.CategoryBeverage}}
		if got := engine.SafetyScore(items); got != 100-25-15 {
			t.Fatalf("SafetyScore = %d, want %d", got, 100-25-15)
		}
	})

	t.Run("alcohol alone costs less than alcohol with medication", func(t *testing.T) {
		beer := consumable.Consumable{Name: "beer", Category: consumable.CategoryAlcohol}
		alone := engine.SafetyScore([]consumable.Consumable{beer})
		if alone != 100-25-15 {
			t.Fatalf("SafetyScore(beer) = %d, want %d", alone, 100-25-15)
		}
	})

	t.Run("two medications cost more than one", func(t *testing.T) {
		one := engine.SafetyScore([]consumable.Consumable{
			{Name: "aspirin", Category: consumable.CategoryMedication},
		})
		two := engine.SafetyScore([]consumable.Consumable{
			{Name: "aspirin", Category: consumable.CategoryMedication},
			{Name: "ibuprofen", Category: consumable.CategoryMedication},
		})
		if two >= one {
			t.Fatalf("expected two medications (%d) to score below one (%d)", two, one)
		}
	})

	t.Run("declared lethal level never raises the score", func(t *testing.T) {
		plain := []consumable.Consumable{{Name: "berries", Category: consumable.CategoryFood}}
		lethal := []consumable.Consumable{{Name: "berries", Category: consumable.CategoryFood, SafetyLevel: consumable.LevelLethal}}
		if engine.SafetyScore(lethal) >= engine.SafetyScore(plain) {
			t.Fatalf("expected lethal declaration to lower the score")
		}
	})

	t.Run("dangerous pair penalty does not stack", func(t *testing.T) {
		// Three medications with grapefruit form three dangerous pairs but
		// only the first one is charged.
		items := []consumable.Consumable{
			{Name: "grapefruit", Category: consumable.CategoryFood},
			{Name: "aspirin", Category: consumable.CategoryMedication},
			{Name: "ibuprofen", Category: consumable.CategoryMedication},
		}
		want := 100 - 10 - 10 - 50 - 25
		if got := engine.SafetyScore(items); got != want {
			t.Fatalf("SafetyScore = %d, want %d", got, want)
		}
	})
}

func TestEffectivenessScore(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("empty set scores 50", func(t *testing.T) {
		if got := engine.EffectivenessScore(nil); got != 50 {
			t.Fatalf("EffectivenessScore(nil) = %d, want 50", got)
		}
	})

	t.Run("single category", func(t *testing.T) {
		items := []consumable.Consumable{{Name: "apple", Category: consumable.CategoryFood}}
		if got := engine.EffectivenessScore(items); got != 58 {
			t.Fatalf("EffectivenessScore = %d, want 58", got)
		}
	})

	t.Run("protein and carb synergy", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "grilled chicken", Category: consumable.CategoryFood},
			{Name: "white rice", Category: consumable.CategoryFood},
		}
		if got := engine.EffectivenessScore(items); got != 58+15 {
			t.Fatalf("EffectivenessScore = %d, want %d", got, 58+15)
		}
	})

	t.Run("diversity bonuses cap", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "a", Category: consumable.CategoryFood},
			{Name: "b", Category: consumable.CategoryBeverage},
			{Name: "c", Category: consumable.CategorySupplement},
			{Name: "d", Category: consumable.CategoryHerb},
			{Name: "e", Category: consumable.CategoryOther},
			{Name: "f", Category: consumable.CategoryMedication},
		}
		// Six categories: diversity caps at 20, compatibility at 15.
		if got := engine.EffectivenessScore(items); got != 50+20+15 {
			t.Fatalf("EffectivenessScore = %d, want %d", got, 50+20+15)
		}
	})
}

func TestNoveltyScore(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("empty set scores 0", func(t *testing.T) {
		if got := engine.NoveltyScore(nil); got != 0 {
			t.Fatalf("NoveltyScore(nil) = %d, want 0", got)
		}
	})

	t.Run("per category bonus", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "apple", Category: consumable.CategoryFood},
			{Name: "water", Category: consumable.CategoryBeverage},
		}
		if got := engine.NoveltyScore(items); got != 30 {
			t.Fatalf("NoveltyScore = %d, want 30", got)
		}
	})

	t.Run("alcohol with supplement bonus", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "beer", Category: consumable.CategoryAlcohol},
			{Name: "vitamin c", Category: consumable.CategorySupplement},
		}
		if got := engine.NoveltyScore(items); got != 30+20 {
			t.Fatalf("NoveltyScore = %d, want %d", got, 30+20)
		}
	})

	t.Run("sweet and savory bonus", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "chocolate", Category: consumable.CategoryFood},
			{Name: "bacon", Category: consumable.CategoryFood},
		}
		if got := engine.NoveltyScore(items); got != 15+15 {
			t.Fatalf("NoveltyScore = %d, want %d", got, 15+15)
		}
	})

	t.Run("score clamps at 100", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "a", Category: consumable.CategoryFood},
			{Name: "b", Category: consumable.CategoryBeverage},
			{Name: "c", Category: consumable.CategorySupplement},
			{Name: "d", Category: consumable.CategoryHerb},
			{Name: "e", Category: consumable.CategoryOther},
			{Name: "f", Category: consumable.CategoryMedication},
			{Name: "g", Category: consumable.CategoryAlcohol},
		}
		if got := engine.NoveltyScore(items); got != 100 {
			t.Fatalf("NoveltyScore = %d, want 100", got)
		}
	})
}

func TestEvaluate(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("empty set baseline", func(t *testing.T) {
		result := engine.Evaluate(nil)
		if result.Safety != 100 || result.Effectiveness != 50 || result.Novelty != 0 {
			t.Fatalf("unexpected baseline: %+v", result)
		}
		if result.Overall != 50 {
			t.Fatalf("Overall = %d, want 50", result.Overall)
		}
		if len(result.Warnings) != 1 {
			t.Fatalf("expected only the disclaimer, got %v", result.Warnings)
		}
	})

	t.Run("overall is the rounded mean", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "beer", Category: consumable.CategoryAlcohol},
			{Name: "aspirin", Category: consumable.CategoryMedication},
		}
		result := engine.Evaluate(items)
		sum := result.Safety + result.Effectiveness + result.Novelty
		want := int(math.Round(float64(sum) / 3.0))
		if result.Overall != want {
			t.Fatalf("Overall = %d, want %d", result.Overall, want)
		}
	})

	t.Run("alcohol with medication is flagged dangerous", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "beer", Category: consumable.CategoryAlcohol},
			{Name: "aspirin", Category: consumable.CategoryMedication},
		}
		result := engine.Evaluate(items)
		if result.Safety >= 60 {
			t.Fatalf("Safety = %d, want < 60", result.Safety)
		}
		if result.Level != string(consumable.LevelCritical) {
			t.Fatalf("Level = %s, want critical", result.Level)
		}
		if len(result.Warnings) < 2 {
			t.Fatalf("expected interaction warning, got %v", result.Warnings)
		}
	})

	t.Run("plain foods score safe", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "apple", Category: consumable.CategoryFood},
			{Name: "banana", Category: consumable.CategoryFood},
		}
		result := engine.Evaluate(items)
		if result.Safety <= 80 {
			t.Fatalf("Safety = %d, want > 80", result.Safety)
		}
		if len(result.Warnings) != 1 {
			t.Fatalf("expected only the disclaimer, got %v", result.Warnings)
		}
		if result.Level != string(consumable.LevelSafe) {
			t.Fatalf("Level = %s, want safe", result.Level)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		items := []consumable.Consumable{
			{Name: "beer", Category: consumable.CategoryAlcohol},
			{Name: "aspirin", Category: consumable.CategoryMedication},
		}
		before := make([]consumable.Consumable, len(items))
		copy(before, items)
		engine.Evaluate(items)
		for i := range items {
			if items[i] != before[i] {
				t.Fatalf("evaluate mutated item %d", i)
			}
		}
	})
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		safety   int
		expected string
	}{
		{safety: 100, expected: "safe"},
		{safety: 80, expected: "safe"},
		{safety: 79, expected: "caution"},
		{safety: 60, expected: "caution"},
		{safety: 59, expected: "warning"},
		{safety: 40, expected: "warning"},
		{safety: 39, expected: "danger"},
		{safety: 20, expected: "danger"},
		{safety: 19, expected: "critical"},
		{safety: 0, expected: "critical"},
	}

	for _, tt := range tests {
		if got := levelLabel(tt.safety); got != tt.expected {
			t.Errorf("levelLabel(%d) = %s, want %s", tt.safety, got, tt.expected)
		}
	}
}

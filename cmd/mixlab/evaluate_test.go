package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"mixlab/internal/catalog"
	"mixlab/internal/consumable"
	"mixlab/internal/progression"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	doc := `version: 1
consumables:
  - name: apple
    category: food
    nutrition:
      calories: 95
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("writing temp catalog: %v", err)
	}
	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return cat
}

func TestResolveItem(t *testing.T) {
	cat := testCatalog(t)

	t.Run("catalog record wins for a bare name", func(t *testing.T) {
		item := resolveItem(cat, "apple")
		if item.Source == consumable.SourceManual {
			t.Fatalf("expected a catalog record, got manual")
		}
		if item.Category != consumable.CategoryFood || item.Nutrition == nil {
			t.Fatalf("unexpected record: %+v", item)
		}
	})

	t.Run("unknown name becomes a manual record", func(t *testing.T) {
		item := resolveItem(cat, "mystery juice")
		if item.Source != consumable.SourceManual {
			t.Fatalf("expected a manual record")
		}
		if item.Name != "mystery juice" {
			t.Fatalf("Name = %q, want mystery juice", item.Name)
		}
	})

	t.Run("category override skips the catalog", func(t *testing.T) {
		item := resolveItem(cat, "apple:beverage")
		if item.Source != consumable.SourceManual {
			t.Fatalf("expected a manual record when a category is given")
		}
		if item.Category != consumable.CategoryBeverage {
			t.Fatalf("Category = %s, want beverage", item.Category)
		}
	})

	t.Run("unknown category folds to other", func(t *testing.T) {
		item := resolveItem(cat, "goo:plasma")
		if item.Category != consumable.CategoryOther {
			t.Fatalf("Category = %s, want other", item.Category)
		}
	})
}

type recordingStore struct {
	calls     []string
	appendErr error
	saveErr   error
}

func (s *recordingStore) Close(ctx context.Context) error        { return nil }
func (s *recordingStore) EnsureSchema(ctx context.Context) error { return nil }

func (s *recordingStore) GetProfile(ctx context.Context, name string) (*progression.Profile, error) {
	return nil, nil
}

func (s *recordingStore) SaveProfile(ctx context.Context, profile progression.Profile) error {
	s.calls = append(s.calls, "save")
	return s.saveErr
}

func (s *recordingStore) AppendExperiment(ctx context.Context, profileName string, experiment progression.Experiment) error {
	s.calls = append(s.calls, "append")
	return s.appendErr
}

func (s *recordingStore) ListExperiments(ctx context.Context, profileName string, limit int) ([]progression.Experiment, error) {
	return nil, nil
}

func TestRecordOutcome(t *testing.T) {
	ctx := context.Background()
	experiment := progression.Experiment{ID: "exp-1"}
	outcome := progression.Outcome{Profile: progression.NewProfile("alex")}

	t.Run("experiment commits before the profile", func(t *testing.T) {
		db := &recordingStore{}
		if err := recordOutcome(ctx, db, "alex", experiment, outcome); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(db.calls) != 2 || db.calls[0] != "append" || db.calls[1] != "save" {
			t.Fatalf("unexpected call order: %v", db.calls)
		}
	})

	t.Run("failed append leaves the profile untouched", func(t *testing.T) {
		db := &recordingStore{appendErr: fmt.Errorf("disk full")}
		if err := recordOutcome(ctx, db, "alex", experiment, outcome); err == nil {
			t.Fatalf("expected error")
		}
		for _, call := range db.calls {
			if call == "save" {
				t.Fatalf("profile saved after a failed append")
			}
		}
	})
}

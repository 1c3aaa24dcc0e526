package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mixlab/internal/catalog"
	"mixlab/internal/config"
	"mixlab/internal/consumable"
	"mixlab/internal/progression"
	"mixlab/internal/scoring"
	"mixlab/internal/store"
)

func evaluateCmd() *cobra.Command {
	var description string
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "evaluate ITEM...",
		Short: "Score a combination of consumables and record the experiment",
		Long:  "Items are catalog names or name:category pairs, e.g. \"beer:alcohol aspirin:medication\".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(args, description, dryRun)
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "Experiment description")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Score only; do not record the experiment")
	return cmd
}

func runEvaluate(args []string, description string, dryRun bool) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}

	base, err := loadKnowledge(cfg)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	items := make([]consumable.Consumable, 0, len(args))
	names := make([]string, 0, len(args))
	for _, arg := range args {
		item := resolveItem(cat, arg)
		items = append(items, item)
		names = append(names, item.Name)
	}

	engine := scoring.NewEngine(base)
	result := engine.Evaluate(items)
	printResult(result)

	if dryRun {
		return nil
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	profile, err := db.GetProfile(ctx, cfg.Profile)
	if err != nil {
		return err
	}
	if profile == nil {
		fresh := progression.NewProfile(cfg.Profile)
		profile = &fresh
	}

	history, err := db.ListExperiments(ctx, cfg.Profile, 0)
	if err != nil {
		return err
	}

	if description == "" {
		description = strings.Join(names, " + ")
	}

	now := time.Now()
	experiment := progression.Experiment{
		ID:          uuid.NewString(),
		Description: description,
		Consumables: items,
		Results:     []scoring.Result{result},
		CreatedAt:   now,
		Success:     result.Safety >= 60,
		Score:       result.Overall,
	}

	outcome := progression.NewOrchestrator(nil).Process(*profile, experiment, history, now)

	if err := recordOutcome(ctx, db, cfg.Profile, experiment, outcome); err != nil {
		return err
	}

	printOutcome(outcome)
	return nil
}

// recordOutcome persists the experiment before the profile, so a failed
// append never leaves the profile credited for an unrecorded experiment.
func recordOutcome(ctx context.Context, db store.Store, profileName string, experiment progression.Experiment, outcome progression.Outcome) error {
	if err := db.AppendExperiment(ctx, profileName, experiment); err != nil {
		return err
	}
	return db.SaveProfile(ctx, outcome.Profile)
}

// resolveItem parses "name" or "name:category". Catalog records win when
// no category override is given; anything else becomes a manual record.
func resolveItem(cat *catalog.Catalog, arg string) consumable.Consumable {
	name := arg
	category := ""
	if i := strings.LastIndex(arg, ":"); i >= 0 {
		name = arg[:i]
		category = arg[i+1:]
	}
	name = strings.TrimSpace(name)

	if category == "" {
		if record, ok := cat.Lookup(name); ok {
			return record
		}
	}

	item := consumable.Consumable{
		Name:   name,
		Source: consumable.SourceManual,
	}
	if category != "" {
		item.Category = consumable.ParseCategory(category)
	}
	return item
}

func printResult(result scoring.Result) {
	fmt.Fprintf(os.Stdout, "%s\n\n", result.Description)
	fmt.Fprintf(os.Stdout, "  Safety:        %3d\n", result.Safety)
	fmt.Fprintf(os.Stdout, "  Effectiveness: %3d\n", result.Effectiveness)
	fmt.Fprintf(os.Stdout, "  Novelty:       %3d\n", result.Novelty)
	fmt.Fprintf(os.Stdout, "  Overall:       %3d (%s)\n", result.Overall, result.Level)

	if len(result.Warnings) > 0 {
		fmt.Fprintln(os.Stdout, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(os.Stdout, "  - %s\n", warning)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(os.Stdout, "\nRecommendations:")
		for _, recommendation := range result.Recommendations {
			fmt.Fprintf(os.Stdout, "  - %s\n", recommendation)
		}
	}
}

func printOutcome(outcome progression.Outcome) {
	fmt.Fprintf(os.Stdout, "\n+%d XP (level %d, %d XP total)\n", outcome.XPGained, outcome.Profile.Level, outcome.Profile.Experience)
	if outcome.LeveledUp {
		fmt.Fprintf(os.Stdout, "Level up! You are now level %d.\n", outcome.Profile.Level)
	}
	for _, achievement := range outcome.Unlocked {
		fmt.Fprintf(os.Stdout, "Achievement unlocked: %s (%s) - %s\n", achievement.Name, achievement.Rarity, achievement.Description)
	}
}

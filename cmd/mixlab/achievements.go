package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mixlab/internal/config"
	"mixlab/internal/progression"
)

func achievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements with progress",
		Args:  cobra.NoArgs,
		RunE:  runAchievements,
	}
}

func runAchievements(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
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

	tracker := progression.NewTracker(nil)
	for _, def := range tracker.Definitions() {
		if unlockedAt, ok := unlockedTime(*profile, def.ID); ok {
			fmt.Fprintf(os.Stdout, "[x] %-20s %-10s unlocked %s\n", def.Name, def.Rarity, unlockedAt)
			continue
		}
		progress := tracker.Progress(def, *profile, history)
		if progress > def.MaxProgress {
			progress = def.MaxProgress
		}
		fmt.Fprintf(os.Stdout, "[ ] %-20s %-10s %d/%d - %s\n", def.Name, def.Rarity, progress, def.MaxProgress, def.Description)
	}
	return nil
}

func unlockedTime(profile progression.Profile, id string) (string, bool) {
	for _, achievement := range profile.Achievements {
		if achievement.ID == id {
			if achievement.UnlockedAt != nil {
				return achievement.UnlockedAt.Local().Format("2006-01-02"), true
			}
			return "", true
		}
	}
	return "", false
}

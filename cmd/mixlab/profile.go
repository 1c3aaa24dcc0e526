package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mixlab/internal/config"
	"mixlab/internal/progression"
)

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the current profile, level progress, and next milestone",
		Args:  cobra.NoArgs,
		RunE:  runProfile,
	}
}

func runProfile(cmd *cobra.Command, args []string) error {
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

	progress := progression.ProgressToNext(profile.Experience, profile.Level)
	milestone := progression.NextMilestone(*profile, history)

	fmt.Fprintf(os.Stdout, "Profile: %s\n", profile.Name)
	fmt.Fprintf(os.Stdout, "Level %d  (%d XP)\n", profile.Level, profile.Experience)
	fmt.Fprintf(os.Stdout, "  %s %d%%", progressBar(progress.Percent), progress.Percent)
	if progress.XPNeeded > 0 {
		fmt.Fprintf(os.Stdout, "  (%d XP to level %d)", progress.XPNeeded, profile.Level+1)
	}
	fmt.Fprintln(os.Stdout, "")

	fmt.Fprintf(os.Stdout, "Experiments: %d\n", profile.Experiments)
	fmt.Fprintf(os.Stdout, "Discoveries: %d\n", profile.Discoveries)
	fmt.Fprintf(os.Stdout, "Streak: %d day(s)\n", profile.Streak)
	if len(profile.FavoriteCategories) > 0 {
		favorites := make([]string, 0, len(profile.FavoriteCategories))
		for _, category := range profile.FavoriteCategories {
			favorites = append(favorites, string(category))
		}
		fmt.Fprintf(os.Stdout, "Favorite categories: %s\n", strings.Join(favorites, ", "))
	}
	fmt.Fprintf(os.Stdout, "Next milestone: %s\n", milestone.Description)

	return nil
}

func progressBar(percent int) string {
	const width = 20
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

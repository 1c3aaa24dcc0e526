package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mixlab/internal/config"
)

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent experiments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum experiments to show (0 for all)")
	return cmd
}

func runHistory(limit int) error {
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

	experiments, err := db.ListExperiments(ctx, cfg.Profile, limit)
	if err != nil {
		return err
	}

	if len(experiments) == 0 {
		fmt.Fprintln(os.Stdout, "No experiments recorded yet.")
		return nil
	}

	for _, experiment := range experiments {
		status := "failed"
		if experiment.Success {
			status = "ok"
		}
		fmt.Fprintf(os.Stdout, "%s  %-40s  score %3d  [%s]\n",
			experiment.CreatedAt.Local().Format("2006-01-02 15:04"),
			experiment.Description,
			experiment.Score,
			status,
		)
	}
	return nil
}

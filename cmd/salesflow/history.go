package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/salesflow/internal/cli"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously generated reports",
		Long:  `List recorded report runs, newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !cfg.History.Enabled {
				fmt.Fprintln(out, cli.FormatInfo("Run history is disabled (history.enabled=false)"))
				return nil
			}

			store, err := initStorage(cmd.Context(), cfg.History.DB)
			if err != nil {
				return fmt.Errorf("failed to open run history: %w", err)
			}
			defer func() { _ = store.Close() }()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, cli.RenderRuns(runs))
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 20, "number of runs to show (0 for all)")

	return cmd
}

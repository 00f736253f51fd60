package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/salesflow/internal/cli"
	"github.com/Veraticus/salesflow/internal/report"
	"github.com/Veraticus/salesflow/internal/session"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate reports for one category",
		Long: `Load a sales spreadsheet, filter it by category and write the CSV
summary, PDF listing and bar chart to the configured output paths.`,
		Example: `  salesflow report --file data/vendas.xlsx --category Tools
  salesflow report -f data/vendas.xlsx -c Toys --no-open`,
		RunE: runReport,
	}

	cmd.Flags().StringP("file", "f", "", "sales spreadsheet (.xlsx)")
	cmd.Flags().StringP("category", "c", "", "category to report on (exact, case-sensitive)")
	cmd.Flags().Bool("no-open", false, "do not open the chart after saving it")
	cmd.Flags().Bool("quiet", false, "do not print the filtered records or progress")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	category, _ := cmd.Flags().GetString("category")
	noOpen, _ := cmd.Flags().GetBool("no-open")
	quiet, _ := cmd.Flags().GetBool("quiet")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noOpen {
		cfg.Chart.Open = false
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interrupts.HandleInterrupts(cmd.Context(), true)
	defer interrupts.Stop()

	history := openHistory(ctx, cfg)
	if history != nil {
		defer func() { _ = history.Close() }()
	}

	opts := pipelineOptions(cfg, history)
	var progress *cli.StageProgress
	if !quiet {
		progress = cli.NewStageProgress(cmd.ErrOrStderr())
		opts = append(opts,
			report.WithDisplay(cli.NewViewPrinter(cmd.OutOrStdout())),
			report.WithProgress(progress.Advance))
	}
	pipeline := report.FromConfig(cfg, opts...)

	sess := session.New(newLoader(cfg), pipeline)
	if _, err := sess.Load(ctx, path); err != nil {
		return err
	}

	result, err := sess.Filter(ctx, category)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Totals"))
	fmt.Fprintln(out, cli.RenderAggregate(report.LabelsFromColumns(cfg.Columns), result.Aggregate))
	fmt.Fprintln(out, cli.RenderResult(result))
	return nil
}

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/salesflow/internal/common"
	"github.com/Veraticus/salesflow/internal/report"
	"github.com/Veraticus/salesflow/internal/session"
	"github.com/Veraticus/salesflow/internal/tui"
)

// defaultUILogFile receives logs while the shell owns the terminal.
const defaultUILogFile = "salesflow.log"

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive shell",
		Long: `Open the interactive shell: choose a sales file from the data directory,
pick a category and press f to generate the reports.`,
		RunE: runUI,
	}
}

func runUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs would corrupt the alternate screen.
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = defaultUILogFile
	}
	f, err := openLogFile(logFile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}
	if err := common.SetupLogger(f, level, viper.GetString("logging.format")); err != nil {
		return err
	}

	ctx := cmd.Context()
	history := openHistory(ctx, cfg)
	if history != nil {
		defer func() { _ = history.Close() }()
	}

	display := tui.NewProgramDisplay()
	opts := append(pipelineOptions(cfg, history), report.WithDisplay(display))
	sess := session.New(newLoader(cfg), report.FromConfig(cfg, opts...))

	slog.Info("Starting interactive shell", "data_dir", cfg.DataDir)
	return tui.Run(ctx, sess,
		tui.WithDataDir(cfg.DataDir),
		tui.WithDisplay(display))
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/salesflow/internal/cli"
	"github.com/Veraticus/salesflow/internal/common"
	"github.com/Veraticus/salesflow/internal/config"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "salesflow",
		Short: "📊 Sales spreadsheet reports",
		Long: `salesflow: load a spreadsheet of sales, pick a product category and get
a CSV summary, a PDF listing and a bar chart of the category's sales.

Run without a command to open the interactive shell.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig(cfgFile)
		},
		RunE:          runUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/salesflow/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))

	rootCmd.AddCommand(uiCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code. Failures
// and panics are recorded in the crash log.
func run(args []string, stdout, stderr io.Writer) (code int) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			slog.Info("Received interrupt signal, shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			writeCrashLog(r, debug.Stack())
			fmt.Fprintln(stderr, cli.FormatError(fmt.Sprintf("unexpected failure: %v", r)))
			code = 2
		}
	}()

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if isUnexpected(err) {
			writeCrashLog(err, debug.Stack())
		}
		fmt.Fprintln(stderr, cli.FormatError(common.UserMessage(err)))
		return 1
	}
	return 0
}

// isUnexpected reports whether err is worth a crash log entry. Errors the
// user can fix from the message alone are not.
func isUnexpected(err error) bool {
	for _, expected := range []error{
		common.ErrNoDatasetLoaded,
		common.ErrNoCategorySelected,
		common.ErrFileNotFound,
		common.ErrInvalidConfig,
	} {
		if errors.Is(err, expected) {
			return false
		}
	}
	var userErr *common.UserError
	return !errors.As(err, &userErr)
}

func writeCrashLog(failure any, stack []byte) {
	path := viper.GetString("crash_log")
	if path == "" {
		path = config.DefaultCrashLog
	}
	if err := common.WriteCrashLog(config.ExpandPath(path), failure, stack); err != nil {
		slog.Error("Failed to write crash log", "path", path, "error", err)
	}
}

func initConfig(cfgFile string) error {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/salesflow", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SALESFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	config.SetDefaults(viper.GetViper())

	if err := setupLogging(os.Stderr); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

// setupLogging configures slog from the logging.* keys. Logs go to
// logging.file when set, otherwise to fallback.
func setupLogging(fallback io.Writer) error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}

	w := fallback
	if path := config.ExpandPath(viper.GetString("logging.file")); path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return err
		}
		w = f
	}

	return common.SetupLogger(w, level, viper.GetString("logging.format"))
}

func openLogFile(path string) (*os.File, error) {
	if err := config.EnsureParentDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "salesflow %s\n", version)
		},
	}
}

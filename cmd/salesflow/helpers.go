package main

import (
	"context"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/Veraticus/salesflow/internal/config"
	"github.com/Veraticus/salesflow/internal/loader"
	"github.com/Veraticus/salesflow/internal/report"
	"github.com/Veraticus/salesflow/internal/storage"
)

func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

func newLoader(cfg *config.Config) *loader.ExcelLoader {
	return loader.NewExcelLoader(cfg.Columns)
}

// openHistory opens the run history database. History is optional: when it
// is disabled or cannot be opened the returned store is nil.
func openHistory(ctx context.Context, cfg *config.Config) *storage.SQLiteStorage {
	if !cfg.History.Enabled {
		return nil
	}

	store, err := initStorage(ctx, cfg.History.DB)
	if err != nil {
		slog.Warn("Run history unavailable", "path", cfg.History.DB, "error", err)
		return nil
	}
	return store
}

func initStorage(ctx context.Context, dbPath string) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// pipelineOptions returns the options shared by every front end.
func pipelineOptions(cfg *config.Config, history *storage.SQLiteStorage) []report.Option {
	var opts []report.Option
	if history != nil {
		opts = append(opts, report.WithHistory(history))
	}
	if cfg.Chart.Open {
		opts = append(opts, report.WithViewer(report.NewSystemViewer()))
	}
	return opts
}

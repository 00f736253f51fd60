package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/salesflow/internal/model"
	"github.com/Veraticus/salesflow/internal/storage"
)

// SetupTestDB creates a migrated in-memory history database that is closed
// when the test ends.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return store
}

// SeedRuns stores one run per category, one minute apart starting at start.
func SeedRuns(t *testing.T, store *storage.SQLiteStorage, start time.Time, categories ...string) []model.ReportRun {
	t.Helper()

	runs := make([]model.ReportRun, 0, len(categories))
	for i, category := range categories {
		run := &model.ReportRun{
			RanAt:       start.Add(time.Duration(i) * time.Minute),
			Source:      "vendas.xlsx",
			Category:    category,
			RowCount:    1,
			QuantitySum: 1,
			PriceSum:    decimal.NewFromInt(10),
		}
		if err := store.SaveRun(context.Background(), run); err != nil {
			t.Fatalf("failed to seed run %q: %v", category, err)
		}
		runs = append(runs, *run)
	}
	return runs
}

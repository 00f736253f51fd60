// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/salesflow/internal/model"
)

// DatasetLoader reads a sales file into memory.
type DatasetLoader interface {
	Load(ctx context.Context, path string) (*model.Dataset, error)
}

// HistoryStore persists completed report runs.
type HistoryStore interface {
	SaveRun(ctx context.Context, run *model.ReportRun) error
	ListRuns(ctx context.Context, limit int) ([]model.ReportRun, error)
	Close() error
}

// Display surfaces a filtered view to the user in row order.
type Display interface {
	ShowFilteredView(view model.FilteredView)
}

// Viewer presents a generated chart image to the user.
type Viewer interface {
	Show(ctx context.Context, path string) error
}

// DisplayFunc adapts a function to the Display interface.
type DisplayFunc func(view model.FilteredView)

// ShowFilteredView calls f(view).
func (f DisplayFunc) ShowFilteredView(view model.FilteredView) {
	f(view)
}

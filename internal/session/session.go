// Package session holds the application state shared by the interactive and
// command-line front ends: the loaded dataset and its category options.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Veraticus/salesflow/internal/common"
	"github.com/Veraticus/salesflow/internal/model"
	"github.com/Veraticus/salesflow/internal/report"
	"github.com/Veraticus/salesflow/internal/service"
)

// Placeholder is the first category option. It never matches a category.
const Placeholder = "Select"

// Runner executes the report pipeline for a dataset and category.
type Runner interface {
	Run(ctx context.Context, ds *model.Dataset, category string) (*report.Result, error)
}

// Session owns the currently loaded dataset.
type Session struct {
	loader  service.DatasetLoader
	runner  Runner
	dataset *model.Dataset
	options []string
	mu      sync.RWMutex
}

// New creates a session with no dataset loaded.
func New(loader service.DatasetLoader, runner Runner) *Session {
	return &Session{
		loader:  loader,
		runner:  runner,
		options: []string{Placeholder},
	}
}

// Load replaces the dataset with the contents of path and resets the
// category options. On failure the previous dataset stays loaded.
func (s *Session) Load(ctx context.Context, path string) (*model.Dataset, error) {
	ds, err := s.loader.Load(ctx, path)
	if err != nil {
		if errors.Is(err, common.ErrFileNotFound) {
			return nil, err
		}
		return nil, common.Processing("load", err)
	}

	options := append([]string{Placeholder}, ds.Categories()...)

	s.mu.Lock()
	s.dataset = ds
	s.options = options
	s.mu.Unlock()

	slog.Info("Loaded sales file", "path", path, "records", ds.Len(), "categories", len(options)-1)
	return ds, nil
}

// Dataset returns the loaded dataset, or nil.
func (s *Session) Dataset() *model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// CategoryOptions returns the placeholder followed by the dataset's
// categories in first-appearance order.
func (s *Session) CategoryOptions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.options...)
}

// FilterOption runs the pipeline for the option at index. Without a dataset
// it fails with common.ErrNoDatasetLoaded; index 0 is the placeholder and
// yields common.ErrNoCategorySelected.
func (s *Session) FilterOption(ctx context.Context, index int) (*report.Result, error) {
	if s.Dataset() == nil {
		return nil, common.ErrNoDatasetLoaded
	}
	options := s.CategoryOptions()
	if index <= 0 || index >= len(options) {
		return nil, common.ErrNoCategorySelected
	}
	return s.Filter(ctx, options[index])
}

// Filter runs the pipeline for category over the loaded dataset.
func (s *Session) Filter(ctx context.Context, category string) (*report.Result, error) {
	if category == "" {
		return nil, common.ErrNoCategorySelected
	}

	ds := s.Dataset()
	if ds == nil {
		return nil, common.ErrNoDatasetLoaded
	}
	return s.runner.Run(ctx, ds, category)
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/salesflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidRun   = errors.New("invalid report run")
	ErrInvalidLimit = errors.New("limit must not be negative")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRun checks a run before it is stored. The category may be any
// non-empty string, including one absent from the source dataset.
func validateRun(run *model.ReportRun) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if run.RanAt.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidRun)
	}
	if run.Category == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidRun)
	}
	if run.RowCount < 0 || run.QuantitySum < 0 {
		return fmt.Errorf("%w: negative totals", ErrInvalidRun)
	}
	return nil
}

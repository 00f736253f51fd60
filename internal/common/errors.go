// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Session errors.
	ErrNoDatasetLoaded    = errors.New("no sales file loaded")
	ErrNoCategorySelected = errors.New("no category selected")

	// Load errors.
	ErrFileNotFound = errors.New("file not found")

	// ErrProcessingFailed covers any other failure while loading, filtering,
	// aggregating or exporting.
	ErrProcessingFailed = errors.New("processing failed")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// Processing wraps err as an ErrProcessingFailed carrying the underlying message.
func Processing(step string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrProcessingFailed, step, err)
}

// UserMessage returns the text to show in an error dialog.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Error()
	}

	switch {
	case errors.Is(err, ErrNoDatasetLoaded):
		return "No sales file loaded."
	case errors.Is(err, ErrNoCategorySelected):
		return "Select a category to filter."
	case errors.Is(err, ErrFileNotFound):
		return "File not found."
	case errors.Is(err, ErrProcessingFailed):
		return fmt.Sprintf("An error occurred while processing sales: %v", err)
	default:
		return err.Error()
	}
}

package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessing(t *testing.T) {
	assert.NoError(t, Processing("csv export", nil))

	cause := errors.New("disk full")
	err := Processing("csv export", cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProcessingFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "csv export")
	assert.Contains(t, err.Error(), "disk full")
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "no dataset", err: fmt.Errorf("filter: %w", ErrNoDatasetLoaded), want: "No sales file loaded."},
		{name: "no category", err: ErrNoCategorySelected, want: "Select a category to filter."},
		{name: "file not found", err: ErrFileNotFound, want: "File not found."},
		{name: "user error", err: NewUserError("Bad sheet", errors.New("x")), want: "Bad sheet: x"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}

	msg := UserMessage(Processing("pdf export", errors.New("no space")))
	assert.Contains(t, msg, "An error occurred while processing sales")
	assert.Contains(t, msg, "no space")
}

func TestWriteCrashLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error_log.txt")

	require.NoError(t, WriteCrashLog(path, errors.New("window failed"), []byte("goroutine 1 [running]:\nmain.main()\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "window failed\ngoroutine 1 [running]:\nmain.main()\n", string(data))

	require.NoError(t, WriteCrashLog(path, "second", nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "second\n")
	assert.NotContains(t, string(data), "window failed")
}

package common

import (
	"fmt"
	"os"
	"runtime/debug"
)

// WriteCrashLog records a fatal top-level failure and its stack trace to path,
// replacing any previous log.
func WriteCrashLog(path string, failure any, stack []byte) error {
	if len(stack) == 0 {
		stack = debug.Stack()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create crash log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%v\n", failure); err != nil {
		return fmt.Errorf("failed to write crash log: %w", err)
	}
	if _, err := f.Write(stack); err != nil {
		return fmt.Errorf("failed to write crash log: %w", err)
	}
	return nil
}

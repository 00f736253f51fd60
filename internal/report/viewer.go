package report

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// SystemViewer opens images with the desktop's default application.
type SystemViewer struct {
	command func(path string) *exec.Cmd
}

// NewSystemViewer creates a viewer for the current platform.
func NewSystemViewer() *SystemViewer {
	return &SystemViewer{command: openCommand}
}

// Show launches the viewer without waiting for it to exit. The viewer
// outlives ctx.
func (v *SystemViewer) Show(_ context.Context, path string) error {
	cmd := v.command(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

func openCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

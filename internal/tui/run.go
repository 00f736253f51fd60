package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive shell and blocks until the user quits or ctx
// is canceled.
func Run(ctx context.Context, app App, opts ...Option) error {
	if app == nil {
		return fmt.Errorf("application state is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	program := tea.NewProgram(
		newModel(ctx, app, cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	if cfg.Display != nil {
		cfg.Display.attach(program)
		defer cfg.Display.attach(nil)
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func loadFileCmd(ctx context.Context, app App, path string) tea.Cmd {
	return func() tea.Msg {
		ds, err := app.Load(ctx, path)
		if err != nil {
			return fileLoadedMsg{path: path, err: err}
		}
		return fileLoadedMsg{
			path:    path,
			dataset: ds,
			options: app.CategoryOptions(),
		}
	}
}

func filterCmd(ctx context.Context, app App, index int) tea.Cmd {
	return func() tea.Msg {
		result, err := app.FilterOption(ctx, index)
		return filterDoneMsg{result: result, err: err}
	}
}

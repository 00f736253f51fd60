package tui

import (
	"github.com/Veraticus/salesflow/internal/model"
	"github.com/Veraticus/salesflow/internal/report"
)

type fileLoadedMsg struct {
	err     error
	dataset *model.Dataset
	path    string
	options []string
}

type filterDoneMsg struct {
	err    error
	result *report.Result
}

// viewShownMsg carries the display step of a running pipeline.
type viewShownMsg struct {
	view model.FilteredView
}

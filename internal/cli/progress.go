package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/Veraticus/salesflow/internal/report"
)

// StageProgress shows pipeline progress as a bar advancing once per stage.
type StageProgress struct {
	bar    *progressbar.ProgressBar
	writer io.Writer
}

// NewStageProgress creates a progress bar sized to the pipeline stages.
func NewStageProgress(w io.Writer) *StageProgress {
	sp := &StageProgress{writer: w}
	sp.bar = progressbar.NewOptions(len(report.Stages),
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][bold]Generating reports...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return sp
}

// Advance moves the bar to stage s. It matches the report.WithProgress callback.
func (sp *StageProgress) Advance(s report.Stage) {
	sp.bar.Describe(fmt.Sprintf("[cyan][bold]%s...[reset]", s))
	if err := sp.bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Finish completes the bar, for runs that ended early.
func (sp *StageProgress) Finish() {
	if err := sp.bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}

// Package report implements the filter, aggregate and export pipeline that
// turns a loaded sales dataset into CSV, PDF and chart reports.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/Veraticus/salesflow/internal/common"
	"github.com/Veraticus/salesflow/internal/config"
	"github.com/Veraticus/salesflow/internal/model"
	"github.com/Veraticus/salesflow/internal/service"
)

// Stage identifies a pipeline step.
type Stage string

const (
	StageFilter    Stage = "filter"
	StageDisplay   Stage = "display"
	StageAggregate Stage = "aggregate"
	StageCSV       Stage = "csv export"
	StagePDF       Stage = "pdf export"
	StageChart     Stage = "chart export"
)

// Stages lists the steps in execution order.
var Stages = []Stage{StageFilter, StageDisplay, StageAggregate, StageCSV, StagePDF, StageChart}

// Outputs holds the report file destinations.
type Outputs struct {
	CSV   string
	PDF   string
	Chart string
}

// Result describes a completed run.
type Result struct {
	View      model.FilteredView
	Aggregate model.CategoryAggregate
	Outputs   Outputs
	Duration  time.Duration
	PDFPages  int
}

// Pipeline filters a dataset by category and exports the reports.
type Pipeline struct {
	display  service.Display
	viewer   service.Viewer
	history  service.HistoryStore
	progress func(Stage)
	now      func() time.Time
	labels   Labels
	outputs  Outputs
	pdfTitle string
	chart    ChartOptions
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDisplay sets where the filtered view is shown.
func WithDisplay(d service.Display) Option {
	return func(p *Pipeline) {
		p.display = d
	}
}

// WithViewer presents the chart after it is saved.
func WithViewer(v service.Viewer) Option {
	return func(p *Pipeline) {
		p.viewer = v
	}
}

// WithHistory records successful runs.
func WithHistory(h service.HistoryStore) Option {
	return func(p *Pipeline) {
		p.history = h
	}
}

// WithProgress is called as each stage starts.
func WithProgress(fn func(Stage)) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// WithLabels sets the aggregate column labels.
func WithLabels(l Labels) Option {
	return func(p *Pipeline) {
		p.labels = l
	}
}

// WithPDFTitle sets the PDF title line.
func WithPDFTitle(title string) Option {
	return func(p *Pipeline) {
		p.pdfTitle = title
	}
}

// WithChartOptions sets the chart appearance.
func WithChartOptions(opts ChartOptions) Option {
	return func(p *Pipeline) {
		p.chart = opts
	}
}

// New creates a pipeline writing to the given outputs.
func New(outputs Outputs, opts ...Option) *Pipeline {
	p := &Pipeline{
		outputs: outputs,
		labels:   LabelsFromColumns(config.DefaultColumns()),
		pdfTitle: config.DefaultPDFTitle,
		chart:    DefaultChartOptions(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromConfig creates a pipeline using the configured outputs, labels, title
// and chart size.
func FromConfig(cfg *config.Config, opts ...Option) *Pipeline {
	chart := DefaultChartOptions()
	chart.Width = vg.Length(cfg.Chart.Width) * vg.Inch
	chart.Height = vg.Length(cfg.Chart.Height) * vg.Inch

	base := []Option{
		WithLabels(LabelsFromColumns(cfg.Columns)),
		WithPDFTitle(cfg.PDF.Title),
		WithChartOptions(chart),
	}
	return New(Outputs{
		CSV:   cfg.Output.CSV,
		PDF:   cfg.Output.PDF,
		Chart: cfg.Output.Chart,
	}, append(base, opts...)...)
}

// Outputs returns the configured destinations.
func (p *Pipeline) Outputs() Outputs {
	return p.outputs
}

// Run executes the pipeline for category. Without a dataset it fails with
// common.ErrNoDatasetLoaded before touching any file. A category absent from
// the dataset is not an error: the reports are written empty. The first
// failing step, or cancellation of ctx between steps, aborts the run with
// common.ErrProcessingFailed; files written by earlier steps are left in place.
func (p *Pipeline) Run(ctx context.Context, ds *model.Dataset, category string) (*Result, error) {
	if ds == nil {
		return nil, common.ErrNoDatasetLoaded
	}

	start := p.now()
	result := &Result{Outputs: p.outputs}

	if err := p.stage(ctx, StageFilter); err != nil {
		return nil, err
	}
	result.View = ds.Filter(category)

	if err := p.stage(ctx, StageDisplay); err != nil {
		return nil, err
	}
	if p.display != nil {
		p.display.ShowFilteredView(result.View)
	}

	if err := p.stage(ctx, StageAggregate); err != nil {
		return nil, err
	}
	result.Aggregate = model.Aggregate(result.View)

	if err := p.stage(ctx, StageCSV); err != nil {
		return nil, err
	}
	if err := WriteCSV(p.outputs.CSV, p.labels, result.Aggregate); err != nil {
		return nil, common.Processing(string(StageCSV), err)
	}

	if err := p.stage(ctx, StagePDF); err != nil {
		return nil, err
	}
	pages, err := WritePDF(p.outputs.PDF, p.pdfTitle, result.View)
	if err != nil {
		return nil, common.Processing(string(StagePDF), err)
	}
	result.PDFPages = pages

	if err := p.stage(ctx, StageChart); err != nil {
		return nil, err
	}
	if err := WriteChart(p.outputs.Chart, result.Aggregate, p.labels, p.chart); err != nil {
		return nil, common.Processing(string(StageChart), err)
	}

	if p.viewer != nil {
		if err := p.viewer.Show(ctx, p.outputs.Chart); err != nil {
			common.LogError(err, "Failed to present chart", common.Fields{"path": p.outputs.Chart})
		}
	}

	result.Duration = p.now().Sub(start)
	p.record(ctx, ds, result)

	slog.Info("Report generated",
		"category", category,
		"rows", result.View.Len(),
		"groups", result.Aggregate.Len(),
		"pdf_pages", result.PDFPages,
		"duration", result.Duration)

	return result, nil
}

// stage announces s and reports whether the run was canceled before it.
func (p *Pipeline) stage(ctx context.Context, s Stage) error {
	if err := ctx.Err(); err != nil {
		return common.Processing(string(s), err)
	}
	slog.Debug("pipeline stage", "stage", s)
	if p.progress != nil {
		p.progress(s)
	}
	return nil
}

// record stores the run in history. History is advisory: failures are logged.
func (p *Pipeline) record(ctx context.Context, ds *model.Dataset, result *Result) {
	if p.history == nil {
		return
	}

	run := &model.ReportRun{
		RanAt:     p.now(),
		Source:    ds.Source,
		Category:  result.View.Category,
		RowCount:  result.View.Len(),
		CSVPath:   result.Outputs.CSV,
		PDFPath:   result.Outputs.PDF,
		ChartPath: result.Outputs.Chart,
	}
	if total, ok := result.Aggregate.Find(result.View.Category); ok {
		run.QuantitySum = total.QuantitySum
		run.PriceSum = total.PriceSum
	}

	if err := p.history.SaveRun(ctx, run); err != nil {
		common.LogError(fmt.Errorf("history: %w", err), "Failed to record report run", common.Fields{
			"category": result.View.Category,
		})
	}
}

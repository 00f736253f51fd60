package report

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/salesflow/internal/model"
)

func scenarioDataset() *model.Dataset {
	return model.NewDataset("vendas.xlsx", []model.Record{
		{ID: "1", Name: "Widget", Category: "Tools", Price: decimal.RequireFromString("10.00"), Quantity: 2, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Gadget", Category: "Tools", Price: decimal.RequireFromString("5.00"), Quantity: 3, Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "Gizmo", Category: "Toys", Price: decimal.RequireFromString("20.00"), Quantity: 1, Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
	})
}

func manyRecords(n int, category string) model.FilteredView {
	records := make([]model.Record, n)
	for i := range records {
		records[i] = model.Record{
			ID:       fmt.Sprintf("%d", i+1),
			Name:     fmt.Sprintf("Item %d", i+1),
			Category: category,
			Price:    decimal.NewFromInt(int64(i + 1)),
			Quantity: 1,
			Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return model.FilteredView{Category: category, Records: records}
}

func testOutputs(dir string) Outputs {
	return Outputs{
		CSV:   filepath.Join(dir, "relatorio.csv"),
		PDF:   filepath.Join(dir, "relatorio.pdf"),
		Chart: filepath.Join(dir, "grafico_vendas.png"),
	}
}

type recordingDisplay struct {
	views []model.FilteredView
}

func (d *recordingDisplay) ShowFilteredView(view model.FilteredView) {
	d.views = append(d.views, view)
}

type fakeViewer struct {
	err   error
	paths []string
}

func (v *fakeViewer) Show(_ context.Context, path string) error {
	v.paths = append(v.paths, path)
	return v.err
}

type fakeHistory struct {
	err  error
	runs []model.ReportRun
	mu   sync.Mutex
}

func (h *fakeHistory) SaveRun(_ context.Context, run *model.ReportRun) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	h.runs = append(h.runs, *run)
	return nil
}

func (h *fakeHistory) ListRuns(_ context.Context, _ int) ([]model.ReportRun, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.runs, nil
}

func (h *fakeHistory) Close() error { return nil }

var errHistoryDown = errors.New("history unavailable")

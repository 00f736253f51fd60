package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/salesflow/internal/model"
	"github.com/Veraticus/salesflow/internal/report"
)

func toolsView() model.FilteredView {
	return model.FilteredView{
		Category: "Tools",
		Records: []model.Record{
			{ID: "1", Name: "Widget", Category: "Tools", Price: decimal.RequireFromString("10.00"), Quantity: 2, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "2", Name: "Gadget", Category: "Tools", Price: decimal.RequireFromString("5.00"), Quantity: 3},
		},
	}
}

func TestViewPrinter_ShowFilteredView(t *testing.T) {
	var buf bytes.Buffer
	NewViewPrinter(&buf).ShowFilteredView(toolsView())

	out := buf.String()
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "Gadget")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "2024-01-01")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Widget")), bytes.Index(buf.Bytes(), []byte("Gadget")))
}

func TestRenderView_Empty(t *testing.T) {
	out := RenderView(model.FilteredView{Category: "Garden"})
	assert.Contains(t, out, `No sales found for category "Garden"`)
}

func TestRenderAggregate(t *testing.T) {
	labels := report.Labels{Category: "Categoria", Quantity: "Quantidade Vendida", Price: "Preço (R$)"}
	out := RenderAggregate(labels, model.Aggregate(toolsView()))

	assert.Contains(t, out, "Quantidade Vendida")
	assert.Contains(t, out, "Tools")
	assert.Contains(t, out, "15.00")
}

func TestRenderRuns(t *testing.T) {
	assert.Contains(t, RenderRuns(nil), "No reports have been generated yet")

	out := RenderRuns([]model.ReportRun{{
		ID:          7,
		RanAt:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Category:    "Toys",
		RowCount:    1,
		QuantitySum: 1,
		PriceSum:    decimal.NewFromInt(20),
		Source:      "vendas.xlsx",
	}})
	assert.Contains(t, out, "Toys")
	assert.Contains(t, out, "20.00")
	assert.Contains(t, out, "vendas.xlsx")
}

func TestRenderResult(t *testing.T) {
	result := &report.Result{
		View:     toolsView(),
		Outputs:  report.Outputs{CSV: "out/relatorio.csv", PDF: "out/relatorio.pdf", Chart: "out/grafico_vendas.png"},
		PDFPages: 1,
	}

	out := RenderResult(result)
	assert.Contains(t, out, "Report Complete")
	assert.Contains(t, out, "out/relatorio.csv")
	assert.Contains(t, out, "(1 pages)")
	assert.Contains(t, out, "out/grafico_vendas.png")
}

func TestStageProgress(t *testing.T) {
	var buf bytes.Buffer
	sp := NewStageProgress(&buf)
	for _, s := range report.Stages {
		sp.Advance(s)
	}
	assert.Contains(t, buf.String(), "6/6")
}

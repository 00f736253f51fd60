// Package testutil provides test utilities for the salesflow project:
// workbook fixtures and an isolated run history database.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// StandardHeader is the header row of the standard sales sheet.
var StandardHeader = []any{
	"ID do Produto",
	"Nome do Produto",
	"Categoria",
	"Preço (R$)",
	"Quantidade Vendida",
	"Data da Venda",
}

// Sale is one row of a fixture workbook.
type Sale struct {
	Date     time.Time
	ID       any
	Name     string
	Category string
	Price    float64
	Quantity int
}

// Workbook builds .xlsx fixtures for loader and session tests.
type Workbook struct {
	t      *testing.T
	header []any
	rows   [][]any
	sheet  string
}

// NewWorkbook starts a workbook with the standard header.
func NewWorkbook(t *testing.T) *Workbook {
	t.Helper()
	return &Workbook{
		t:      t,
		header: StandardHeader,
		sheet:  "Sheet1",
	}
}

// WithHeader replaces the header row.
func (w *Workbook) WithHeader(cells ...any) *Workbook {
	w.header = cells
	return w
}

// WithSheet renames the sheet the rows are written to.
func (w *Workbook) WithSheet(name string) *Workbook {
	w.sheet = name
	return w
}

// WithSale appends a typed sale row.
func (w *Workbook) WithSale(s Sale) *Workbook {
	var date any = s.Date
	if s.Date.IsZero() {
		date = ""
	}
	w.rows = append(w.rows, []any{s.ID, s.Name, s.Category, s.Price, s.Quantity, date})
	return w
}

// WithSales appends several sale rows.
func (w *Workbook) WithSales(sales ...Sale) *Workbook {
	for _, s := range sales {
		w.WithSale(s)
	}
	return w
}

// WithRow appends a raw row.
func (w *Workbook) WithRow(cells ...any) *Workbook {
	w.rows = append(w.rows, cells)
	return w
}

// Save writes the workbook into dir and returns its path.
func (w *Workbook) Save(dir, name string) string {
	w.t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if w.sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", w.sheet); err != nil {
			w.t.Fatalf("failed to rename sheet: %v", err)
		}
	}

	if err := f.SetSheetRow(w.sheet, "A1", &w.header); err != nil {
		w.t.Fatalf("failed to write header: %v", err)
	}
	for i, row := range w.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			w.t.Fatalf("failed to compute cell name: %v", err)
		}
		r := row
		if err := f.SetSheetRow(w.sheet, cell, &r); err != nil {
			w.t.Fatalf("failed to write row %d: %v", i+2, err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		w.t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

// ScenarioSales returns the three-row dataset used across package tests.
func ScenarioSales() []Sale {
	return []Sale{
		{ID: 1, Name: "Widget", Category: "Tools", Price: 10.00, Quantity: 2, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Gadget", Category: "Tools", Price: 5.00, Quantity: 3, Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Name: "Gizmo", Category: "Toys", Price: 20.00, Quantity: 1, Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
	}
}

// ScenarioWorkbook writes the scenario dataset to dir/vendas.xlsx.
func ScenarioWorkbook(t *testing.T, dir string) string {
	t.Helper()
	return NewWorkbook(t).WithSales(ScenarioSales()...).Save(dir, "vendas.xlsx")
}

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Veraticus/salesflow/internal/model"
	"github.com/Veraticus/salesflow/internal/report"
)

// viewHeaders are the column titles of the filtered record table.
var viewHeaders = []string{"ID", "Product", "Category", "Price", "Qty", "Date"}

// ViewPrinter writes filtered views to a terminal. It implements service.Display.
type ViewPrinter struct {
	writer io.Writer
}

// NewViewPrinter creates a printer writing to w.
func NewViewPrinter(w io.Writer) *ViewPrinter {
	return &ViewPrinter{writer: w}
}

// ShowFilteredView prints the view's records in order.
func (p *ViewPrinter) ShowFilteredView(view model.FilteredView) {
	if _, err := fmt.Fprintln(p.writer, RenderView(view)); err != nil {
		slog.Warn("Failed to print filtered view", "error", err)
	}
}

// RenderView renders the records of a filtered view as a table.
func RenderView(view model.FilteredView) string {
	if view.Empty() {
		return FormatWarning(fmt.Sprintf("No sales found for category %q", view.Category))
	}

	rows := make([][]string, 0, view.Len())
	for _, r := range view.Records {
		date := ""
		if !r.Date.IsZero() {
			date = r.DateString()
		}
		rows = append(rows, []string{
			r.ID,
			r.Name,
			r.Category,
			model.FormatMoney(r.Price),
			strconv.FormatInt(r.Quantity, 10),
			date,
		})
	}

	return newTable(viewHeaders, rows).String()
}

// RenderAggregate renders the per-category totals.
func RenderAggregate(labels report.Labels, agg model.CategoryAggregate) string {
	rows := make([][]string, 0, agg.Len())
	for _, total := range agg.Totals {
		rows = append(rows, []string{
			total.Category,
			strconv.FormatInt(total.QuantitySum, 10),
			model.FormatMoney(total.PriceSum),
		})
	}
	return newTable([]string{labels.Category, labels.Quantity, labels.Price}, rows).String()
}

// RenderRuns renders recorded report runs.
func RenderRuns(runs []model.ReportRun) string {
	if len(runs) == 0 {
		return FormatInfo("No reports have been generated yet")
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			strconv.FormatInt(run.ID, 10),
			run.RanAt.Local().Format("2006-01-02 15:04"),
			run.Category,
			strconv.Itoa(run.RowCount),
			strconv.FormatInt(run.QuantitySum, 10),
			model.FormatMoney(run.PriceSum),
			run.Source,
		})
	}
	return newTable([]string{"#", "When", "Category", "Rows", "Qty", "Total", "Source"}, rows).String()
}

// RenderResult summarizes a completed run and where its reports went.
func RenderResult(result *report.Result) string {
	summary := fmt.Sprintf("Category: %s\n", result.View.Category) +
		fmt.Sprintf("Rows: %d\n", result.View.Len()) +
		fmt.Sprintf("%s CSV: %s\n", FileIcon, result.Outputs.CSV) +
		fmt.Sprintf("%s PDF: %s (%d pages)\n", FileIcon, result.Outputs.PDF, result.PDFPages) +
		fmt.Sprintf("%s Chart: %s", ChartIcon, result.Outputs.Chart)
	return RenderBox("Report Complete", summary)
}

func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
}

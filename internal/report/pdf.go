package report

import (
	"fmt"
	"strconv"

	"github.com/signintech/gopdf"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/Veraticus/salesflow/internal/config"
	"github.com/Veraticus/salesflow/internal/model"
)

// Page geometry in points. Y coordinates are measured from the bottom edge.
const (
	PageHeight   = 792.0 // US letter
	LeftMargin   = 100.0
	TopMargin    = 750.0
	BottomMargin = 50.0
	RowStep      = 20.0

	titleGap     = 20.0 // title to separator
	tableOffset  = 40.0 // top margin to column header
	headerRule   = 15.0 // column header to its separator
	headerToRows = 30.0 // column header to first data row

	fontFamily = "gomono"
	fontSize   = 10
)

const (
	separator   = "----------------------------------------"
	tableRule   = "------------------------------------------------------------"
	tableHeader = "ID  | Nome do Produto           | Categoria          | Preço (R$) | Qtd | Data"
)

// PDFLine is one line of text placed at height Y on a page.
type PDFLine struct {
	Text string
	Y    float64
}

// PDFPage holds the lines drawn on a single page.
type PDFPage struct {
	Lines []PDFLine
}

// FormatRow renders a record as a fixed-width table row. Fields are padded,
// never truncated.
func FormatRow(r model.Record) string {
	date := ""
	if !r.Date.IsZero() {
		date = r.DateString()
	}
	return fmt.Sprintf("%-3s | %-25s | %-18s | %-10s | %-3s | %s",
		r.ID,
		r.Name,
		r.Category,
		model.FormatMoney(r.Price),
		strconv.FormatInt(r.Quantity, 10),
		date)
}

// PlanPDF lays out the report for a filtered view. A new page starts whenever
// the cursor drops below the bottom margin after a row.
func PlanPDF(title string, view model.FilteredView) []PDFPage {
	page := PDFPage{Lines: []PDFLine{
		{Y: TopMargin, Text: title},
		{Y: TopMargin - titleGap, Text: separator},
		{Y: TopMargin - tableOffset, Text: tableHeader},
		{Y: TopMargin - tableOffset - headerRule, Text: tableRule},
	}}
	var pages []PDFPage

	y := TopMargin - tableOffset - headerToRows
	for _, r := range view.Records {
		page.Lines = append(page.Lines, PDFLine{Y: y, Text: FormatRow(r)})
		y -= RowStep

		if y < BottomMargin {
			pages = append(pages, page)
			page = PDFPage{}
			y = TopMargin
		}
	}

	page.Lines = append(page.Lines, PDFLine{Y: y, Text: tableRule})
	return append(pages, page)
}

// RenderPDF draws the planned pages to path on letter paper.
func RenderPDF(path string, pages []PDFPage) error {
	if err := config.EnsureParentDir(path); err != nil {
		return err
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeLetter})

	if err := pdf.AddTTFFontData(fontFamily, gomono.TTF); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}

	for i, page := range pages {
		pdf.AddPage()
		if err := pdf.SetFont(fontFamily, "", fontSize); err != nil {
			return fmt.Errorf("failed to set font: %w", err)
		}
		for _, line := range page.Lines {
			pdf.SetXY(LeftMargin, PageHeight-line.Y)
			if err := pdf.Text(line.Text); err != nil {
				return fmt.Errorf("failed to draw page %d: %w", i+1, err)
			}
		}
	}

	if err := pdf.WritePdf(path); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// WritePDF plans and renders the filtered view report.
func WritePDF(path, title string, view model.FilteredView) (int, error) {
	pages := PlanPDF(title, view)
	if err := RenderPDF(path, pages); err != nil {
		return 0, err
	}
	return len(pages), nil
}

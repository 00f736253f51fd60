// Package loader reads sales spreadsheets into datasets.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Veraticus/salesflow/internal/common"
	"github.com/Veraticus/salesflow/internal/config"
	"github.com/Veraticus/salesflow/internal/model"
)

// Loader errors.
var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidCell   = errors.New("invalid cell value")
	ErrNoSheet       = errors.New("workbook has no sheets")
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"01-02-06",
	"2/1/2006",
}

// ExcelLoader reads the first worksheet of an .xlsx workbook.
type ExcelLoader struct {
	columns config.Columns
	sheet   string
}

// Option configures an ExcelLoader.
type Option func(*ExcelLoader)

// WithSheet reads the named worksheet instead of the first one.
func WithSheet(name string) Option {
	return func(l *ExcelLoader) {
		l.sheet = name
	}
}

// NewExcelLoader creates a loader that locates columns by the given header names.
func NewExcelLoader(columns config.Columns, opts ...Option) *ExcelLoader {
	l := &ExcelLoader{columns: columns}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads path into a Dataset. A missing file yields common.ErrFileNotFound.
func (l *ExcelLoader) Load(ctx context.Context, path string) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheet
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	records, err := l.parseRows(rows)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded sales workbook",
		"path", path,
		"sheet", sheet,
		"records", len(records))

	return model.NewDataset(path, records), nil
}

type columnIndex struct {
	id, name, category, price, quantity, date int
}

func (l *ExcelLoader) parseRows(rows [][]string) ([]model.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet is empty", ErrMissingColumn)
	}

	idx, err := l.mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		// Row numbers are 1-based and include the header.
		rec, err := parseRecord(row, idx, i+2)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (l *ExcelLoader) mapHeader(header []string) (columnIndex, error) {
	find := func(names []string) (int, error) {
		for _, name := range names {
			for i, cell := range header {
				if strings.EqualFold(strings.TrimSpace(cell), strings.TrimSpace(name)) {
					return i, nil
				}
			}
		}
		label := ""
		if len(names) > 0 {
			label = names[0]
		}
		return -1, fmt.Errorf("%w: %q", ErrMissingColumn, label)
	}

	var idx columnIndex
	var err error
	if idx.id, err = find(l.columns.ID); err != nil {
		return idx, err
	}
	if idx.name, err = find(l.columns.Name); err != nil {
		return idx, err
	}
	if idx.category, err = find(l.columns.Category); err != nil {
		return idx, err
	}
	if idx.price, err = find(l.columns.Price); err != nil {
		return idx, err
	}
	if idx.quantity, err = find(l.columns.Quantity); err != nil {
		return idx, err
	}
	if idx.date, err = find(l.columns.Date); err != nil {
		return idx, err
	}
	return idx, nil
}

func parseRecord(row []string, idx columnIndex, rowNum int) (model.Record, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	price, err := parsePrice(cell(idx.price))
	if err != nil {
		return model.Record{}, fmt.Errorf("row %d price: %w", rowNum, err)
	}
	qty, err := parseQuantity(cell(idx.quantity))
	if err != nil {
		return model.Record{}, fmt.Errorf("row %d quantity: %w", rowNum, err)
	}
	date, err := ParseDate(cell(idx.date))
	if err != nil {
		return model.Record{}, fmt.Errorf("row %d date: %w", rowNum, err)
	}

	return model.Record{
		ID:       cell(idx.id),
		Name:     cell(idx.name),
		Category: cell(idx.category),
		Price:    price,
		Quantity: qty,
		Date:     date,
	}, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCell, s)
	}
	return d, nil
}

func parseQuantity(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidCell, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidCell, s)
	}
	return d.IntPart(), nil
}

// ParseDate accepts an Excel serial date or one of the common text layouts.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCell, s)
		}
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrInvalidCell, s)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRun records one completed pipeline execution.
type ReportRun struct {
	RanAt       time.Time
	PriceSum    decimal.Decimal
	Source      string
	Category    string
	CSVPath     string
	PDFPath     string
	ChartPath   string
	ID          int64
	RowCount    int
	QuantitySum int64
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record represents a single sale row from a loaded spreadsheet.
type Record struct {
	Date     time.Time
	Price    decimal.Decimal // Unit price as written in the source cell
	ID       string
	Name     string
	Category string
	Quantity int64 // Units sold, never negative
}

// DateString returns the sale date in ISO form.
func (r Record) DateString() string {
	return r.Date.Format("2006-01-02")
}

// Dataset is an ordered, immutable set of records loaded from one file.
// A new load replaces the whole Dataset.
type Dataset struct {
	LoadedAt time.Time
	Source   string
	Records  []Record
}

// NewDataset creates a dataset from records in source order.
func NewDataset(source string, records []Record) *Dataset {
	return &Dataset{
		Source:   source,
		Records:  records,
		LoadedAt: time.Now(),
	}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Categories returns the distinct category values in first-appearance order.
func (d *Dataset) Categories() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{}, 16)
	categories := make([]string, 0, 16)
	for _, r := range d.Records {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		categories = append(categories, r.Category)
	}
	return categories
}

// Filter returns the records whose category equals category exactly.
func (d *Dataset) Filter(category string) FilteredView {
	view := FilteredView{Category: category}
	if d == nil {
		return view
	}
	for _, r := range d.Records {
		if r.Category == category {
			view.Records = append(view.Records, r)
		}
	}
	return view
}

// FilteredView is the ordered subsequence of a Dataset matching one category.
type FilteredView struct {
	Category string
	Records  []Record
}

// Len returns the number of records in the view.
func (v FilteredView) Len() int {
	return len(v.Records)
}

// Empty reports whether no record matched.
func (v FilteredView) Empty() bool {
	return len(v.Records) == 0
}

// FormatMoney renders a price with at least two decimals and never rounds
// away precision present in the value.
func FormatMoney(d decimal.Decimal) string {
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Veraticus/salesflow/internal/config"
	"github.com/Veraticus/salesflow/internal/model"
)

// Labels names the aggregate columns in generated reports.
type Labels struct {
	Category string
	Quantity string
	Price    string
}

// LabelsFromColumns uses the first configured header name of each field.
func LabelsFromColumns(c config.Columns) Labels {
	first := func(names []string, fallback string) string {
		if len(names) > 0 && names[0] != "" {
			return names[0]
		}
		return fallback
	}
	return Labels{
		Category: first(c.Category, "Category"),
		Quantity: first(c.Quantity, "Quantity"),
		Price:    first(c.Price, "Price"),
	}
}

// EncodeCSV writes the aggregate as a header row plus one row per category.
func EncodeCSV(w io.Writer, labels Labels, agg model.CategoryAggregate) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{labels.Category, labels.Quantity, labels.Price}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, total := range agg.Totals {
		record := []string{
			total.Category,
			strconv.FormatInt(total.QuantitySum, 10),
			model.FormatMoney(total.PriceSum),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSV writes the aggregate to path, replacing any existing file.
func WriteCSV(path string, labels Labels, agg model.CategoryAggregate) error {
	if err := config.EnsureParentDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := EncodeCSV(file, labels, agg); err != nil {
		return err
	}
	return file.Close()
}

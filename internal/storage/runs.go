package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/salesflow/internal/model"
)

// SaveRun records a completed report run and sets its ID.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.ReportRun) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRun(run); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO report_runs (
			ran_at, source, category, row_count, quantity_sum, price_sum,
			csv_path, pdf_path, chart_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RanAt.UTC(),
		run.Source,
		run.Category,
		run.RowCount,
		run.QuantitySum,
		run.PriceSum.String(),
		run.CSVPath,
		run.PDFPath,
		run.ChartPath,
	)
	if err != nil {
		return fmt.Errorf("failed to save report run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get report run id: %w", err)
	}
	run.ID = id
	return nil
}

// ListRuns returns recorded runs, newest first. A limit of zero returns all
// runs.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]model.ReportRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	query := `
		SELECT id, ran_at, source, category, row_count, quantity_sum, price_sum,
			csv_path, pdf_path, chart_path
		FROM report_runs
		ORDER BY ran_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.ReportRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report runs: %w", err)
	}
	return runs, nil
}

// CountRunsByCategory returns how often each category has been reported.
func (s *SQLiteStorage) CountRunsByCategory(ctx context.Context) (map[string]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*) FROM report_runs GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count report runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			category string
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan run count: %w", err)
		}
		counts[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run counts: %w", err)
	}
	return counts, nil
}

func scanRun(rows *sql.Rows) (model.ReportRun, error) {
	var (
		run                         model.ReportRun
		ranAt                       time.Time
		priceSum                    string
		csvPath, pdfPath, chartPath sql.NullString
	)
	if err := rows.Scan(
		&run.ID,
		&ranAt,
		&run.Source,
		&run.Category,
		&run.RowCount,
		&run.QuantitySum,
		&priceSum,
		&csvPath,
		&pdfPath,
		&chartPath,
	); err != nil {
		return model.ReportRun{}, fmt.Errorf("failed to scan report run: %w", err)
	}

	price, err := decimal.NewFromString(priceSum)
	if err != nil {
		return model.ReportRun{}, fmt.Errorf("run %d has invalid price sum %q: %w", run.ID, priceSum, err)
	}

	run.RanAt = ranAt
	run.PriceSum = price
	run.CSVPath = csvPath.String
	run.PDFPath = pdfPath.String
	run.ChartPath = chartPath.String
	return run, nil
}

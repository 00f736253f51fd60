package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/salesflow/internal/model"
)

func TestSaveRun_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	ranAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	run := testRun("Tools", ranAt)
	require.NoError(t, store.SaveRun(ctx, run))
	assert.NotZero(t, run.ID)

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.True(t, got.RanAt.Equal(ranAt))
	assert.Equal(t, "data/vendas.xlsx", got.Source)
	assert.Equal(t, "Tools", got.Category)
	assert.Equal(t, 2, got.RowCount)
	assert.Equal(t, int64(5), got.QuantitySum)
	assert.True(t, got.PriceSum.Equal(decimal.RequireFromString("15.05")))
	assert.Equal(t, "relatorio.csv", got.CSVPath)
	assert.Equal(t, "relatorio.pdf", got.PDFPath)
	assert.Equal(t, "grafico_vendas.png", got.ChartPath)
}

func TestSaveRun_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		run     *model.ReportRun
		wantErr error
		name    string
	}{
		{name: "nil run", run: nil, wantErr: ErrNilParameter},
		{name: "missing timestamp", run: testRun("Tools", time.Time{}), wantErr: ErrInvalidRun},
		{name: "missing category", run: testRun("", time.Now()), wantErr: ErrInvalidRun},
		{
			name: "negative rows",
			run: func() *model.ReportRun {
				r := testRun("Tools", time.Now())
				r.RowCount = -1
				return r
			}(),
			wantErr: ErrInvalidRun,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveRun(ctx, tt.run)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	//nolint:staticcheck // exercising nil context handling
	assert.ErrorIs(t, store.SaveRun(nil, testRun("Tools", time.Now())), ErrNilContext)
}

func TestListRuns_NewestFirstWithLimit(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, category := range []string{"Tools", "Toys", "Garden"} {
		require.NoError(t, store.SaveRun(ctx, testRun(category, base.Add(time.Duration(i)*time.Hour))))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "Garden", runs[0].Category)
	assert.Equal(t, "Toys", runs[1].Category)

	all, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = store.ListRuns(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestListRuns_Empty(t *testing.T) {
	store := createTestStorage(t)

	runs, err := store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestCountRunsByCategory(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for _, category := range []string{"Tools", "Toys", "Tools"} {
		require.NoError(t, store.SaveRun(ctx, testRun(category, time.Now())))
	}

	counts, err := store.CountRunsByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Tools": 2, "Toys": 1}, counts)
}

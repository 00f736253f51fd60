package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/salesflow/internal/config"
	"github.com/Veraticus/salesflow/internal/model"
)

func TestLabelsFromColumns(t *testing.T) {
	labels := LabelsFromColumns(config.DefaultColumns())
	assert.Equal(t, "Categoria", labels.Category)
	assert.Equal(t, "Quantidade Vendida", labels.Quantity)
	assert.Equal(t, "Preço (R$)", labels.Price)

	labels = LabelsFromColumns(config.Columns{})
	assert.Equal(t, Labels{Category: "Category", Quantity: "Quantity", Price: "Price"}, labels)
}

func TestEncodeCSV(t *testing.T) {
	labels := LabelsFromColumns(config.DefaultColumns())

	tests := []struct {
		name string
		agg  model.CategoryAggregate
		want string
	}{
		{
			name: "single group",
			agg: model.CategoryAggregate{Totals: []model.CategoryTotal{
				{Category: "Tools", QuantitySum: 5, PriceSum: decimal.RequireFromString("15.00")},
			}},
			want: "Categoria,Quantidade Vendida,Preço (R$)\nTools,5,15.00\n",
		},
		{
			name: "empty aggregate writes header only",
			agg:  model.CategoryAggregate{},
			want: "Categoria,Quantidade Vendida,Preço (R$)\n",
		},
		{
			name: "category with comma is quoted",
			agg: model.CategoryAggregate{Totals: []model.CategoryTotal{
				{Category: "Home, Garden", QuantitySum: 1, PriceSum: decimal.RequireFromString("0.305")},
			}},
			want: "Categoria,Quantidade Vendida,Preço (R$)\n\"Home, Garden\",1,0.305\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeCSV(&buf, labels, tt.agg))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCSV_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "relatorio.csv")
	labels := LabelsFromColumns(config.DefaultColumns())

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than the report\n"), 0o600))

	require.NoError(t, WriteCSV(path, labels, model.CategoryAggregate{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Categoria,Quantidade Vendida,Preço (R$)\n", string(data))
}

func TestWriteCSV_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := WriteCSV(filepath.Join(blocker, "relatorio.csv"), Labels{}, model.CategoryAggregate{})
	assert.Error(t, err)
}

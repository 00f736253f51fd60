package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/Veraticus/salesflow/internal/config"
	"github.com/Veraticus/salesflow/internal/model"
)

// ChartOptions controls the bar chart appearance.
type ChartOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultChartOptions returns the standard sales chart settings.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Title:  "Vendas por Categoria",
		XLabel: "Categoria",
		YLabel: "Total",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

const barWidth = vg.Length(20)

// BuildChart plots summed quantity and summed price side by side for each
// category. An empty aggregate yields empty axes.
func BuildChart(agg model.CategoryAggregate, labels Labels, opts ChartOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	if agg.Len() == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return p, nil
	}

	quantities := make(plotter.Values, agg.Len())
	prices := make(plotter.Values, agg.Len())
	names := make([]string, agg.Len())
	for i, total := range agg.Totals {
		quantities[i] = float64(total.QuantitySum)
		prices[i] = total.PriceSum.InexactFloat64()
		names[i] = total.Category
	}

	qtyBars, err := plotter.NewBarChart(quantities, barWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build quantity bars: %w", err)
	}
	qtyBars.LineStyle.Width = vg.Length(0)
	qtyBars.Color = plotutil.Color(0)
	qtyBars.Offset = -barWidth / 2

	priceBars, err := plotter.NewBarChart(prices, barWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build price bars: %w", err)
	}
	priceBars.LineStyle.Width = vg.Length(0)
	priceBars.Color = plotutil.Color(1)
	priceBars.Offset = barWidth / 2

	p.Add(qtyBars, priceBars)
	p.Legend.Add(labels.Quantity, qtyBars)
	p.Legend.Add(labels.Price, priceBars)
	p.Legend.Top = true
	p.NominalX(names...)

	return p, nil
}

// WriteChart renders the aggregate chart to path. The image format follows
// the file extension.
func WriteChart(path string, agg model.CategoryAggregate, labels Labels, opts ChartOptions) error {
	if err := config.EnsureParentDir(path); err != nil {
		return err
	}

	p, err := BuildChart(agg, labels, opts)
	if err != nil {
		return err
	}

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

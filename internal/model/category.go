package model

import "github.com/shopspring/decimal"

// CategoryTotal holds the summed quantity and price of one category group.
type CategoryTotal struct {
	PriceSum    decimal.Decimal
	Category    string
	QuantitySum int64
}

// CategoryAggregate holds one total per distinct category of a view,
// in first-appearance order.
type CategoryAggregate struct {
	Totals []CategoryTotal
}

// Len returns the number of category groups.
func (a CategoryAggregate) Len() int {
	return len(a.Totals)
}

// Find returns the total for a category.
func (a CategoryAggregate) Find(category string) (CategoryTotal, bool) {
	for _, t := range a.Totals {
		if t.Category == category {
			return t, true
		}
	}
	return CategoryTotal{}, false
}

// Aggregate groups the view by category and sums quantity and price.
// An empty view yields an aggregate with no rows.
func Aggregate(view FilteredView) CategoryAggregate {
	index := make(map[string]int)
	var agg CategoryAggregate
	for _, r := range view.Records {
		i, ok := index[r.Category]
		if !ok {
			i = len(agg.Totals)
			index[r.Category] = i
			agg.Totals = append(agg.Totals, CategoryTotal{
				Category: r.Category,
				PriceSum: decimal.Zero,
			})
		}
		agg.Totals[i].QuantitySum += r.Quantity
		agg.Totals[i].PriceSum = agg.Totals[i].PriceSum.Add(r.Price)
	}
	return agg
}

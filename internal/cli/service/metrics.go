package service

import (
	"StockYard/internal/cli/model/view"

	"github.com/shopspring/decimal"
)

// Metrics are the aggregate figures shown above the table. They are a pure
// function of the currently visible subset, recomputed on every render pass;
// nothing is persisted and no alerting follows from crossing a threshold.
type Metrics struct {
	TotalItems int
	TotalValue decimal.Decimal
	LowStock   []view.Item
	Critical   []view.Item
}

// Compute derives the metrics from the visible items. The low-stock band is
// inclusive of zero, so every critical item is also a low-stock item.
func Compute(items []view.Item) Metrics {
	m := Metrics{TotalItems: len(items), TotalValue: decimal.Zero}
	for _, it := range items {
		m.TotalValue = m.TotalValue.Add(it.Quantity.Mul(it.Price))
		if it.Quantity.LessThanOrEqual(it.LowStockAt) {
			m.LowStock = append(m.LowStock, it)
		}
		if it.Quantity.IsZero() {
			m.Critical = append(m.Critical, it)
		}
	}
	return m
}

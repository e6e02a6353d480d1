// Package view holds the display-oriented projection of a Material. It is
// rebuilt from scratch on every load; the only identity that survives a
// reload is the material ID.
package view

import (
	"regexp"
	"strings"
	"time"

	"StockYard/internal/cli/model"

	"github.com/shopspring/decimal"
)

// StockStatus classifies an item by quantity against its low-stock threshold.
type StockStatus string

const (
	OutOfStock StockStatus = "Out of Stock"
	LowStock   StockStatus = "Low Stock"
	InStock    StockStatus = "In Stock"
)

// Sentinels for optional wire fields.
const (
	NoType        = "N/A"
	NoUnit        = "units"
	Uncategorized = "Uncategorized"
)

// Placeholder values for attributes the backend does not persist yet. They are
// display-only: mutation payloads never include them, so any edit of these
// fields would not survive a save. Whether they become real backend fields is
// an open contract question; until then they stay fixed.
var (
	placeholderPrice    = decimal.Zero
	placeholderLowStock = decimal.NewFromInt(10)
)

const (
	placeholderLocation = "Warehouse"
	placeholderSupplier = "Various"
)

// Item is the client-local projection of a Material.
type Item struct {
	ID       int64
	Name     string
	SKU      string
	Category string
	Type     string
	Quantity decimal.Decimal
	Unit     string

	// Display-only placeholders, never sent back to the server.
	Price         decimal.Decimal
	LowStockAt    decimal.Decimal
	Location      string
	Supplier      string
	LastRestocked string
}

var whitespaceRe = regexp.MustCompile(`\s`)

// SKUFromName derives the synthetic display SKU: uppercase, whitespace
// replaced with hyphens. Never sent to the server.
func SKUFromName(name string) string {
	return strings.ToUpper(whitespaceRe.ReplaceAllString(name, "-"))
}

// FromMaterial maps a wire record into an Item. Missing optional fields take
// fixed sentinels, absent stock becomes zero, and the placeholder fields are
// repopulated with their fixed values.
func FromMaterial(m model.Material, now time.Time) Item {
	it := Item{
		ID:       m.ID,
		Name:     m.Name,
		SKU:      SKUFromName(m.Name),
		Category: Uncategorized,
		Type:     m.Type,
		Unit:     m.Unit,

		Price:         placeholderPrice,
		LowStockAt:    placeholderLowStock,
		Location:      placeholderLocation,
		Supplier:      placeholderSupplier,
		LastRestocked: now.Format("2006-01-02"),
	}
	if m.Discipline != nil && m.Discipline.Name != "" {
		it.Category = m.Discipline.Name
	}
	if it.Type == "" {
		it.Type = NoType
	}
	if it.Unit == "" {
		it.Unit = NoUnit
	}
	if m.CurrentStock.Valid {
		it.Quantity = m.CurrentStock.Decimal
	}
	return it
}

// Status classifies the item's stock level. The low-stock band is inclusive,
// so a zero quantity is both critical and low; OutOfStock wins.
func (it Item) Status() StockStatus {
	if it.Quantity.IsZero() {
		return OutOfStock
	}
	if it.Quantity.LessThanOrEqual(it.LowStockAt) {
		return LowStock
	}
	return InStock
}

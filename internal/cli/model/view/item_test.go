package view

import (
	"testing"
	"time"

	"StockYard/internal/cli/model"

	"github.com/shopspring/decimal"
)

func wireSpool() model.Material {
	return model.Material{
		ID:   5,
		Name: "Wire Spool",
		Type: "Consumable",
		Unit: "feet",
		Discipline: &model.Discipline{
			ID:   1,
			Name: "Electrical",
		},
		CurrentStock: decimal.NullDecimal{Decimal: decimal.Zero, Valid: true},
	}
}

func TestFromMaterial_WireSpool(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	it := FromMaterial(wireSpool(), now)

	if it.ID != 5 {
		t.Fatalf("id: got %d", it.ID)
	}
	if it.Name != "Wire Spool" {
		t.Fatalf("name: got %q", it.Name)
	}
	if it.SKU != "WIRE-SPOOL" {
		t.Fatalf("sku: got %q", it.SKU)
	}
	if it.Category != "Electrical" {
		t.Fatalf("category: got %q", it.Category)
	}
	if it.Type != "Consumable" {
		t.Fatalf("type: got %q", it.Type)
	}
	if !it.Quantity.IsZero() {
		t.Fatalf("quantity: got %s", it.Quantity)
	}
	if it.Unit != "feet" {
		t.Fatalf("unit: got %q", it.Unit)
	}
	if got := it.Status(); got != OutOfStock {
		t.Fatalf("status: got %q", got)
	}
	if it.LastRestocked != "2025-03-14" {
		t.Fatalf("lastRestocked: got %q", it.LastRestocked)
	}
}

func TestFromMaterial_Sentinels(t *testing.T) {
	m := model.Material{ID: 9, Name: "Mystery Box"}
	it := FromMaterial(m, time.Now())

	if it.Category != Uncategorized {
		t.Fatalf("category sentinel: got %q", it.Category)
	}
	if it.Type != NoType {
		t.Fatalf("type sentinel: got %q", it.Type)
	}
	if it.Unit != NoUnit {
		t.Fatalf("unit sentinel: got %q", it.Unit)
	}
	// absent stock coerces to zero
	if !it.Quantity.IsZero() {
		t.Fatalf("absent stock must become 0, got %s", it.Quantity)
	}
	if it.Location != "Warehouse" || it.Supplier != "Various" {
		t.Fatalf("placeholders: %q %q", it.Location, it.Supplier)
	}
	if !it.LowStockAt.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("low-stock threshold: %s", it.LowStockAt)
	}
}

func TestSKUFromName(t *testing.T) {
	cases := map[string]string{
		"Wire Spool":             "WIRE-SPOOL",
		"Concrete Mix - 50lb":    "CONCRETE-MIX---50LB",
		"rebar":                  "REBAR",
		"PVC Pipe 2in\tSchedule": "PVC-PIPE-2IN-SCHEDULE",
	}
	for in, want := range cases {
		if got := SKUFromName(in); got != want {
			t.Fatalf("SKUFromName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStatus_Bands(t *testing.T) {
	base := FromMaterial(wireSpool(), time.Now())

	base.Quantity = decimal.Zero
	if base.Status() != OutOfStock {
		t.Fatalf("0 must be OutOfStock")
	}
	base.Quantity = decimal.NewFromInt(10)
	if base.Status() != LowStock {
		t.Fatalf("threshold quantity must be LowStock (inclusive)")
	}
	base.Quantity = decimal.RequireFromString("10.01")
	if base.Status() != InStock {
		t.Fatalf("above threshold must be InStock")
	}
}

package service

import (
	"strings"
	"testing"

	"StockYard/internal/cli/model/view"

	"github.com/stretchr/testify/assert"
)

func sampleItems() []view.Item {
	return []view.Item{
		{ID: 1, Name: "Wire Spool", SKU: "WIRE-SPOOL", Category: "Electrical", Type: "Consumable", Supplier: "Various"},
		{ID: 2, Name: "Copper Pipe", SKU: "COPPER-PIPE", Category: "Plumbing", Type: "Raw Material", Supplier: "Various"},
		{ID: 3, Name: "Breaker Panel", SKU: "BREAKER-PANEL", Category: "Electrical", Type: "Equipment", Supplier: "BuildCorp"},
	}
}

func TestVisible_SearchIsCaseInsensitiveSubset(t *testing.T) {
	items := sampleItems()
	got := Visible(items, "wIrE", FilterAll, FilterAll)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// every result member matches on name, SKU or supplier
	for _, term := range []string{"pipe", "BREAKER", "buildcorp", "o"} {
		for _, it := range Visible(items, term, FilterAll, FilterAll) {
			needle := strings.ToLower(term)
			match := strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.SKU), needle) ||
				strings.Contains(strings.ToLower(it.Supplier), needle)
			assert.Truef(t, match, "item %d does not match %q", it.ID, term)
		}
	}
}

func TestVisible_SearchMatchesSupplier(t *testing.T) {
	got := Visible(sampleItems(), "buildcorp", FilterAll, FilterAll)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestVisible_CategoryExactMatch(t *testing.T) {
	got := Visible(sampleItems(), "", "Electrical", FilterAll)
	assert.Len(t, got, 2)
	for _, it := range got {
		assert.Equal(t, "Electrical", it.Category)
	}

	// no loaded item matches: empty result, not an error
	assert.Empty(t, Visible(sampleItems(), "", "Masonry", FilterAll))
}

func TestVisible_PredicatesCompose(t *testing.T) {
	got := Visible(sampleItems(), "e", "Electrical", "Consumable")
	assert.Len(t, got, 1)
	assert.Equal(t, "Wire Spool", got[0].Name)
}

func TestVisible_PreservesOrder(t *testing.T) {
	got := Visible(sampleItems(), "", FilterAll, FilterAll)
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

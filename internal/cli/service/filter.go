package service

import (
	"strings"

	"StockYard/internal/cli/model/view"
)

// Visible applies the three filter predicates as a strict AND, preserving
// input order: case-insensitive substring search over name, SKU and supplier;
// exact category match; exact type match. FilterAll (or "") disables the
// category and type predicates.
func Visible(items []view.Item, search, category, typ string) []view.Item {
	out := items
	if search != "" {
		needle := strings.ToLower(search)
		out = keep(out, func(it view.Item) bool {
			return strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.SKU), needle) ||
				strings.Contains(strings.ToLower(it.Supplier), needle)
		})
	}
	if category != "" && category != FilterAll {
		out = keep(out, func(it view.Item) bool { return it.Category == category })
	}
	if typ != "" && typ != FilterAll {
		out = keep(out, func(it view.Item) bool { return it.Type == typ })
	}
	return out
}

func keep(items []view.Item, pred func(view.Item) bool) []view.Item {
	out := make([]view.Item, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

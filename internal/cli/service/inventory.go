// Package service implements the client-side data-sync layer: loading and
// normalizing the remote collections, filtering the in-memory view, deriving
// metrics and coordinating mutations.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"StockYard/internal/cli/model"
	"StockYard/internal/cli/model/view"
)

// Gateway is the slice of the API client the loaders need.
type Gateway interface {
	Do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error)
}

// FilterAll is the neutral value for the category and type filters.
const FilterAll = "All"

// Filters narrows the materials load. FilterAll (or "") leaves a dimension
// unconstrained.
type Filters struct {
	Category string
	Type     string
}

// baselineUnits is the fixed vocabulary the unit selector always offers;
// units observed in loaded data are merged in after it.
var baselineUnits = []string{
	"each", "pieces", "bags", "sheets", "feet", "meters", "gallons", "liters",
	"boxes", "kits", "sections", "rolls", "bundles", "yards", "sq ft", "cu yd",
}

// Inventory owns the remote collections and the vocabularies derived from
// them. It is not safe for concurrent writers; callers serialize loads.
type Inventory struct {
	gw Gateway

	disciplines []model.Discipline
	items       []view.Item
	types       []string
	units       []string

	lastFilters Filters
	loadedOnce  bool

	now func() time.Time
}

func NewInventory(gw Gateway) *Inventory {
	return &Inventory{
		gw:    gw,
		units: append([]string(nil), baselineUnits...),
		now:   time.Now,
	}
}

// LoadDisciplines fetches the reference vocabulary. A failure here degrades
// category filtering rather than blocking the rest of the page, so callers
// record the error and keep going.
func (inv *Inventory) LoadDisciplines(ctx context.Context) error {
	b, err := inv.gw.Do(ctx, http.MethodGet, "/api/disciplines/", nil, nil)
	if err != nil {
		return fmt.Errorf("loading disciplines: %w", err)
	}
	var ds []model.Discipline
	if err := json.Unmarshal(b, &ds); err != nil {
		return fmt.Errorf("decode disciplines: %w", err)
	}
	inv.disciplines = ds
	return nil
}

// Disciplines returns the loaded reference list in server order.
func (inv *Inventory) Disciplines() []model.Discipline { return inv.disciplines }

// DisciplineID resolves a display name to its identifier via the loaded
// reference list. No remote lookup happens here.
func (inv *Inventory) DisciplineID(name string) (int64, bool) {
	for _, d := range inv.disciplines {
		if d.Name == name {
			return d.ID, true
		}
	}
	return 0, false
}

// CategoryNames returns the discipline names for filter/form controls.
func (inv *Inventory) CategoryNames() []string {
	names := make([]string, 0, len(inv.disciplines))
	for _, d := range inv.disciplines {
		names = append(names, d.Name)
	}
	return names
}

// LoadMaterials fetches the page matching f and rebuilds the item collection
// and the derived vocabularies. An unresolved category name omits the
// constraint entirely instead of failing. On a request failure the previous
// collection stays untouched.
func (inv *Inventory) LoadMaterials(ctx context.Context, f Filters) error {
	inv.lastFilters = f
	return inv.load(ctx, f)
}

// Reload re-runs the last materials load. This is the cache-invalidation
// policy after every successful mutation: invalidate-all, never patch.
func (inv *Inventory) Reload(ctx context.Context) error {
	return inv.load(ctx, inv.lastFilters)
}

func (inv *Inventory) load(ctx context.Context, f Filters) error {
	q := url.Values{}
	if f.Category != "" && f.Category != FilterAll {
		if id, ok := inv.DisciplineID(f.Category); ok {
			q.Set("discipline__discipline_id", strconv.FormatInt(id, 10))
		}
	}
	if f.Type != "" && f.Type != FilterAll {
		q.Set("material_type", f.Type)
	}

	b, err := inv.gw.Do(ctx, http.MethodGet, "/api/materials/", q, nil)
	if err != nil {
		return fmt.Errorf("loading materials: %w", err)
	}
	var page []model.Material
	if err := json.Unmarshal(b, &page); err != nil {
		return fmt.Errorf("decode materials: %w", err)
	}

	today := inv.now()
	items := make([]view.Item, 0, len(page))
	for _, m := range page {
		items = append(items, view.FromMaterial(m, today))
	}
	inv.items = items
	inv.loadedOnce = true

	// Derived vocabularies: distinct non-empty values, first-appearance order.
	// Types are rebuilt per page; units accumulate on top of the baseline and
	// anything seen before.
	inv.types = distinct(nil, page, func(m model.Material) string { return m.Type })
	inv.units = distinct(inv.units, page, func(m model.Material) string { return m.Unit })
	return nil
}

func distinct(seed []string, page []model.Material, field func(model.Material) string) []string {
	out := make([]string, 0, len(seed)+len(page))
	seen := make(map[string]struct{}, len(seed)+len(page))
	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range seed {
		add(v)
	}
	for _, m := range page {
		add(field(m))
	}
	return out
}

// Items returns the current collection in server order.
func (inv *Inventory) Items() []view.Item { return inv.items }

// Loaded reports whether at least one materials load has succeeded.
func (inv *Inventory) Loaded() bool { return inv.loadedOnce }

// TypeOptions returns the material types observed in the current page.
func (inv *Inventory) TypeOptions() []string { return inv.types }

// UnitOptions returns the unit vocabulary: baseline plus everything observed.
func (inv *Inventory) UnitOptions() []string { return inv.units }

// GetMaterial fetches a single record, used to prefill the edit form.
func (inv *Inventory) GetMaterial(ctx context.Context, id int64) (*model.Material, error) {
	b, err := inv.gw.Do(ctx, http.MethodGet, fmt.Sprintf("/api/materials/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	var m model.Material
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode material: %w", err)
	}
	return &m, nil
}

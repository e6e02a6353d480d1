package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"StockYard/internal/cli/api"
	"StockYard/internal/cli/model"
)

// Confirmer asks the user a blocking yes/no question before a destructive
// action. The CLI injects a stdin prompt, the browse screen a modal, tests a
// canned answer.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// Form carries the user-editable material fields. Category is the discipline
// display name; it is resolved to an identifier at submit time.
type Form struct {
	Name     string
	Category string
	Type     string
	Unit     string
	Brand    string
	Color    string
	Size     string
}

// ValidationError is a user-correctable rejection of a mutation. Message is
// ready to show; the form stays open and populated for correction.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// validationRules is the classification table for 400 bodies: a per-field
// server phrasing mapped to the message shown to the user. Centralized here
// instead of inline conditionals so new phrasings are a one-line addition.
var validationRules = []struct {
	field    string
	contains string
	message  string
}{
	{"material_name", "already exists.", "Material name already exists. Please choose a unique name."},
	{"material_name", "This field must be unique.", "Material name must be unique. Please choose a different name."},
}

// Mutations validates and submits create/update/delete requests and keeps the
// inventory consistent afterwards by triggering a full reload, never a local
// patch.
type Mutations struct {
	gw      Gateway
	inv     *Inventory
	confirm Confirmer
}

func NewMutations(gw Gateway, inv *Inventory, confirm Confirmer) *Mutations {
	return &Mutations{gw: gw, inv: inv, confirm: confirm}
}

// payload maps form fields to wire fields 1:1; the category name resolves to
// a discipline id through the loaded reference list, unresolved becomes null.
func (m *Mutations) payload(f Form) model.MaterialPayload {
	p := model.MaterialPayload{
		Name: f.Name,
		Unit: f.Unit,
	}
	if p.Unit == "" {
		p.Unit = "units"
	}
	p.Type = optional(f.Type)
	p.Brand = optional(f.Brand)
	p.Color = optional(f.Color)
	p.Size = optional(f.Size)
	if id, ok := m.inv.DisciplineID(f.Category); ok {
		p.Discipline = &id
	}
	return p
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Create submits a new material. On success the inventory is fully reloaded
// and the created record returned.
func (m *Mutations) Create(ctx context.Context, f Form) (*model.Material, error) {
	return m.submit(ctx, http.MethodPost, "/api/materials/", f)
}

// Update replaces the material with id wholesale (PUT, not a partial patch).
func (m *Mutations) Update(ctx context.Context, id int64, f Form) (*model.Material, error) {
	return m.submit(ctx, http.MethodPut, fmt.Sprintf("/api/materials/%d/", id), f)
}

func (m *Mutations) submit(ctx context.Context, method, path string, f Form) (*model.Material, error) {
	b, err := m.gw.Do(ctx, method, path, nil, m.payload(f))
	if err != nil {
		return nil, classifySubmitError(err)
	}
	var created model.Material
	if err := json.Unmarshal(b, &created); err != nil {
		return nil, fmt.Errorf("decode material: %w", err)
	}
	if err := m.inv.Reload(ctx); err != nil {
		return &created, fmt.Errorf("saved, but reloading inventory failed: %w", err)
	}
	return &created, nil
}

// Delete asks for confirmation, then issues the delete and reloads. Declining
// is a no-op: (false, nil) with no request issued.
func (m *Mutations) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := m.confirm.Confirm("Are you sure you want to delete this item?")
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if _, err := m.gw.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/materials/%d/", id), nil, nil); err != nil {
		return false, classifySubmitError(err)
	}
	if err := m.inv.Reload(ctx); err != nil {
		return true, fmt.Errorf("deleted, but reloading inventory failed: %w", err)
	}
	return true, nil
}

// classifySubmitError turns a 400 response into a *ValidationError using the
// rules table, then the non_field_errors list, then the raw structured body.
// Everything else passes through unchanged (401 already became
// ErrSessionExpired inside the gateway).
func classifySubmitError(err error) error {
	var re *api.RequestError
	if !errors.As(err, &re) || re.Status != http.StatusBadRequest {
		return err
	}

	var fields map[string]json.RawMessage
	if jsonErr := json.Unmarshal(re.Body, &fields); jsonErr != nil {
		return err
	}

	for _, rule := range validationRules {
		raw, ok := fields[rule.field]
		if !ok {
			continue
		}
		var msgs []string
		if json.Unmarshal(raw, &msgs) != nil {
			continue
		}
		for _, msg := range msgs {
			if strings.Contains(msg, rule.contains) {
				return &ValidationError{Message: rule.message}
			}
		}
	}

	if raw, ok := fields["non_field_errors"]; ok {
		var msgs []string
		if json.Unmarshal(raw, &msgs) == nil && len(msgs) > 0 {
			return &ValidationError{Message: "Failed to save item: " + strings.Join(msgs, ", ")}
		}
	}

	return &ValidationError{Message: "Validation error: " + strings.TrimSpace(string(re.Body))}
}

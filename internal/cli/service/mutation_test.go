package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"StockYard/internal/cli/api"
	"StockYard/internal/cli/model"

	"github.com/stretchr/testify/assert"
)

func alwaysYes() Confirmer { return ConfirmFunc(func(string) (bool, error) { return true, nil }) }
func alwaysNo() Confirmer  { return ConfirmFunc(func(string) (bool, error) { return false, nil }) }

func mutationStack(t *testing.T, handler func(c call) ([]byte, error)) (*Mutations, *Inventory, *fakeGateway) {
	t.Helper()
	gw := &fakeGateway{handler: func(c call) ([]byte, error) {
		switch {
		case c.method == http.MethodGet && c.path == "/api/disciplines/":
			return []byte(disciplinesJSON), nil
		case c.method == http.MethodGet && c.path == "/api/materials/":
			return []byte(materialsJSON), nil
		}
		return handler(c)
	}}
	inv := NewInventory(gw)
	if err := inv.LoadDisciplines(context.Background()); err != nil {
		t.Fatalf("disciplines: %v", err)
	}
	if err := inv.LoadMaterials(context.Background(), Filters{}); err != nil {
		t.Fatalf("materials: %v", err)
	}
	return NewMutations(gw, inv, alwaysYes()), inv, gw
}

func TestCreate_SuccessTriggersExactlyOneReload(t *testing.T) {
	mut, _, gw := mutationStack(t, func(c call) ([]byte, error) {
		if c.method == http.MethodPost && c.path == "/api/materials/" {
			return []byte(`{"material_id":8,"material_name":"Rebar","unit_of_measure":"pieces"}`), nil
		}
		return nil, errors.New("unexpected " + c.method + " " + c.path)
	})

	before := gw.count(http.MethodGet, "/api/materials/")
	created, err := mut.Create(context.Background(), Form{Name: "Rebar", Unit: "pieces", Category: "Electrical"})
	assert.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)

	// full refetch, not an in-place splice; exactly one
	assert.Equal(t, before+1, gw.count(http.MethodGet, "/api/materials/"))
}

func TestCreate_PayloadMapping(t *testing.T) {
	mut, _, gw := mutationStack(t, func(c call) ([]byte, error) {
		return []byte(`{"material_id":8,"material_name":"Rebar"}`), nil
	})

	_, err := mut.Create(context.Background(), Form{Name: "Rebar", Category: "Plumbing", Type: "Raw Material"})
	assert.NoError(t, err)

	var posted *model.MaterialPayload
	for _, c := range gw.calls {
		if c.method == http.MethodPost {
			p := c.payload.(model.MaterialPayload)
			posted = &p
		}
	}
	if posted == nil {
		t.Fatal("no POST recorded")
	}
	assert.Equal(t, "Rebar", posted.Name)
	// empty unit falls back to the default, never null
	assert.Equal(t, "units", posted.Unit)
	assert.NotNil(t, posted.Discipline)
	assert.Equal(t, int64(2), *posted.Discipline)
	assert.NotNil(t, posted.Type)
	// unset optionals are null
	assert.Nil(t, posted.Brand)
	assert.Nil(t, posted.Color)
	assert.Nil(t, posted.Size)
}

func TestCreate_UnresolvedCategorySendsNull(t *testing.T) {
	mut, _, gw := mutationStack(t, func(c call) ([]byte, error) {
		return []byte(`{"material_id":8}`), nil
	})
	_, err := mut.Create(context.Background(), Form{Name: "Rebar", Unit: "pieces", Category: "Masonry"})
	assert.NoError(t, err)
	for _, c := range gw.calls {
		if c.method == http.MethodPost {
			assert.Nil(t, c.payload.(model.MaterialPayload).Discipline)
		}
	}
}

func TestCreate_DuplicateNameFriendlyMessage(t *testing.T) {
	mut, _, gw := mutationStack(t, func(c call) ([]byte, error) {
		return nil, &api.RequestError{
			Status: http.StatusBadRequest,
			Detail: "Bad Request",
			Body:   []byte(`{"material_name":["dim material with this material name already exists."]}`),
		}
	})

	before := gw.count(http.MethodGet, "/api/materials/")
	_, err := mut.Create(context.Background(), Form{Name: "Wire Spool", Unit: "feet"})

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve), "got %v", err)
	assert.Equal(t, "Material name already exists. Please choose a unique name.", ve.Message)
	// failed mutation reloads nothing
	assert.Equal(t, before, gw.count(http.MethodGet, "/api/materials/"))
}

func TestCreate_SecondUniquePhrasing(t *testing.T) {
	mut, _, _ := mutationStack(t, func(c call) ([]byte, error) {
		return nil, &api.RequestError{
			Status: http.StatusBadRequest,
			Body:   []byte(`{"material_name":["This field must be unique."]}`),
		}
	})
	_, err := mut.Create(context.Background(), Form{Name: "Wire Spool", Unit: "feet"})
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Material name must be unique. Please choose a different name.", ve.Message)
}

func TestCreate_NonFieldErrorsJoined(t *testing.T) {
	mut, _, _ := mutationStack(t, func(c call) ([]byte, error) {
		return nil, &api.RequestError{
			Status: http.StatusBadRequest,
			Body:   []byte(`{"non_field_errors":["bad combo","try again"]}`),
		}
	})
	_, err := mut.Create(context.Background(), Form{Name: "X", Unit: "each"})
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Failed to save item: bad combo, try again", ve.Message)
}

func TestCreate_UnknownFieldErrorsSurfaceRawBody(t *testing.T) {
	mut, _, _ := mutationStack(t, func(c call) ([]byte, error) {
		return nil, &api.RequestError{
			Status: http.StatusBadRequest,
			Body:   []byte(`{"unit_of_measure":["This field is required."]}`),
		}
	})
	_, err := mut.Create(context.Background(), Form{Name: "X"})
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Message, "unit_of_measure")
}

func TestCreate_ServerErrorPassesThrough(t *testing.T) {
	mut, _, _ := mutationStack(t, func(c call) ([]byte, error) {
		return nil, &api.RequestError{Status: http.StatusInternalServerError, Detail: "Internal Server Error"}
	})
	_, err := mut.Create(context.Background(), Form{Name: "X", Unit: "each"})
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "5xx must not classify as validation")
	var re *api.RequestError
	assert.True(t, errors.As(err, &re))
}

func TestUpdate_UsesPutOnResource(t *testing.T) {
	mut, _, gw := mutationStack(t, func(c call) ([]byte, error) {
		if c.method == http.MethodPut && c.path == "/api/materials/5/" {
			return []byte(`{"material_id":5,"material_name":"Wire Spool XL"}`), nil
		}
		return nil, errors.New("unexpected " + c.method + " " + c.path)
	})
	updated, err := mut.Update(context.Background(), 5, Form{Name: "Wire Spool XL", Unit: "feet"})
	assert.NoError(t, err)
	assert.Equal(t, "Wire Spool XL", updated.Name)
	assert.Equal(t, 1, gw.count(http.MethodPut, "/api/materials/5/"))
}

func TestDelete_ConfirmedIssuesDeleteAndReloads(t *testing.T) {
	mut, _, gw := mutationStack(t, func(c call) ([]byte, error) {
		if c.method == http.MethodDelete && c.path == "/api/materials/5/" {
			return nil, nil
		}
		return nil, errors.New("unexpected " + c.method + " " + c.path)
	})

	before := gw.count(http.MethodGet, "/api/materials/")
	ok, err := mut.Delete(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, gw.count(http.MethodDelete, "/api/materials/5/"))
	assert.Equal(t, before+1, gw.count(http.MethodGet, "/api/materials/"))
}

func TestDelete_DeclinedIsNoOp(t *testing.T) {
	mut, inv, gw := mutationStack(t, func(c call) ([]byte, error) {
		return nil, errors.New("must not be called")
	})
	mut.confirm = alwaysNo()

	callsBefore := len(gw.calls)
	ok, err := mut.Delete(context.Background(), 5)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, callsBefore, len(gw.calls), "declining must issue no request")
	assert.Len(t, inv.Items(), 3)
}

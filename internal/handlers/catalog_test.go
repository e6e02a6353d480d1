package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"StockYard/internal/model"
	"StockYard/internal/repo"
	"StockYard/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBackend implements Authenticator and Catalog with canned data.
type stubBackend struct {
	materials   []service.MaterialWithStock
	disciplines []model.Discipline
	createErr   error
	deleted     []int64
	lastFilter  repo.MaterialFilter
}

func (s *stubBackend) Authenticate(_ context.Context, username, password string) (string, error) {
	if username == "demo" && password == "demo1234" {
		return "tok-123", nil
	}
	return "", service.ErrInvalidCredentials
}

func (s *stubBackend) VerifyToken(token string) (int64, error) {
	if token == "tok-123" {
		return 1, nil
	}
	return 0, service.ErrInvalidToken
}

func (s *stubBackend) ListDisciplines(context.Context) ([]model.Discipline, error) {
	return s.disciplines, nil
}

func (s *stubBackend) ListMaterials(_ context.Context, f repo.MaterialFilter) ([]service.MaterialWithStock, error) {
	s.lastFilter = f
	return s.materials, nil
}

func (s *stubBackend) GetMaterial(_ context.Context, id int64) (*service.MaterialWithStock, error) {
	for i := range s.materials {
		if s.materials[i].ID == id {
			return &s.materials[i], nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *stubBackend) CreateMaterial(_ context.Context, in service.MaterialInput) (*service.MaterialWithStock, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	m := service.MaterialWithStock{Material: model.Material{ID: 100, Name: in.Name, Unit: in.Unit}}
	s.materials = append(s.materials, m)
	return &m, nil
}

func (s *stubBackend) UpdateMaterial(_ context.Context, id int64, in service.MaterialInput) (*service.MaterialWithStock, error) {
	m, err := s.GetMaterial(context.Background(), id)
	if err != nil {
		return nil, err
	}
	m.Name = in.Name
	return m, nil
}

func (s *stubBackend) DeleteMaterial(_ context.Context, id int64) error {
	if _, err := s.GetMaterial(context.Background(), id); err != nil {
		return err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestServer(t *testing.T, backend *stubBackend) *httptest.Server {
	t.Helper()
	h := NewHandler(backend, backend, zap.NewNop().Sugar())
	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)
	return srv
}

func doReq(t *testing.T, srv *httptest.Server, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func demoBackend() *stubBackend {
	electrical := model.Discipline{ID: 1, Name: "Electrical"}
	return &stubBackend{
		disciplines: []model.Discipline{electrical},
		materials: []service.MaterialWithStock{
			{
				Material: model.Material{
					ID: 5, Name: "Wire Spool", Type: "Consumable", Unit: "feet",
					DisciplineID: &electrical.ID, Discipline: &electrical,
				},
				CurrentStock: decimal.RequireFromString("42.5"),
			},
			{
				Material:     model.Material{ID: 6, Name: "Breaker Panel", Unit: "each"},
				CurrentStock: decimal.Zero,
			},
		},
	}
}

func TestObtainToken(t *testing.T) {
	srv := newTestServer(t, demoBackend())

	resp, body := doReq(t, srv, http.MethodPost, "/api/token-auth/", "",
		`{"username":"demo","password":"demo1234"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"token":"tok-123"}`, string(body))

	resp, body = doReq(t, srv, http.MethodPost, "/api/token-auth/", "",
		`{"username":"demo","password":"wrong"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"non_field_errors":["Unable to log in with provided credentials."]}`, string(body))
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	srv := newTestServer(t, demoBackend())

	resp, body := doReq(t, srv, http.MethodGet, "/api/materials/", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Authentication credentials were not provided."}`, string(body))

	resp, body = doReq(t, srv, http.MethodGet, "/api/materials/", "bogus", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Invalid token."}`, string(body))
}

func TestListMaterials_BodyShape(t *testing.T) {
	srv := newTestServer(t, demoBackend())

	resp, body := doReq(t, srv, http.MethodGet, "/api/materials/", "tok-123", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out, 2)

	// stock is a fixed two-decimal string; the discipline embeds or is null
	assert.Equal(t, "42.50", out[0]["current_stock"])
	disc, ok := out[0]["discipline"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Electrical", disc["discipline_name"])

	assert.Equal(t, "0.00", out[1]["current_stock"])
	assert.Nil(t, out[1]["discipline"])
}

func TestListMaterials_FilterParams(t *testing.T) {
	backend := demoBackend()
	srv := newTestServer(t, backend)

	resp, _ := doReq(t, srv, http.MethodGet,
		"/api/materials/?discipline__discipline_id=1&material_type=Consumable", "tok-123", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), backend.lastFilter.DisciplineID)
	assert.Equal(t, "Consumable", backend.lastFilter.Type)

	// an unparsable discipline id drops the constraint
	resp, _ = doReq(t, srv, http.MethodGet,
		"/api/materials/?discipline__discipline_id=garbage", "tok-123", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, backend.lastFilter.DisciplineID)
}

func TestCreateMaterial_ValidationBody(t *testing.T) {
	backend := demoBackend()
	backend.createErr = service.FieldErrors{
		"material_name": {"dim material with this material name already exists."},
	}
	srv := newTestServer(t, backend)

	resp, body := doReq(t, srv, http.MethodPost, "/api/materials/", "tok-123",
		`{"material_name":"Wire Spool","unit_of_measure":"feet"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t,
		`{"material_name":["dim material with this material name already exists."]}`,
		string(body))
}

func TestCreateMaterial_Created(t *testing.T) {
	srv := newTestServer(t, demoBackend())

	resp, body := doReq(t, srv, http.MethodPost, "/api/materials/", "tok-123",
		`{"material_name":"Copper Pipe","unit_of_measure":"feet"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Copper Pipe", out["material_name"])
	assert.Equal(t, "0.00", out["current_stock"])
}

func TestDeleteMaterial_NoContent(t *testing.T) {
	backend := demoBackend()
	srv := newTestServer(t, backend)

	resp, body := doReq(t, srv, http.MethodDelete, "/api/materials/5/", "tok-123", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)
	assert.Equal(t, []int64{5}, backend.deleted)
}

func TestGetMaterial_NotFoundBody(t *testing.T) {
	srv := newTestServer(t, demoBackend())

	resp, body := doReq(t, srv, http.MethodGet, "/api/materials/999/", "tok-123", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Not found."}`, string(body))
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"StockYard/internal/model"
	"StockYard/internal/repo"
	"StockYard/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type catalogHandler struct {
	catalog Catalog
	logger  *zap.SugaredLogger
}

func newCatalogHandler(catalog Catalog, logger *zap.SugaredLogger) *catalogHandler {
	return &catalogHandler{catalog: catalog, logger: logger}
}

// materialResponse flattens the material and serializes current_stock as a
// fixed two-decimal string, the way the upstream API does.
type materialResponse struct {
	model.Material
	CurrentStock string `json:"current_stock"`
}

func toResponse(m service.MaterialWithStock) materialResponse {
	return materialResponse{Material: m.Material, CurrentStock: m.CurrentStock.StringFixed(2)}
}

func (h *catalogHandler) listDisciplines(w http.ResponseWriter, r *http.Request) {
	ds, err := h.catalog.ListDisciplines(r.Context())
	if err != nil {
		h.serverError(w, "list disciplines", err)
		return
	}
	if ds == nil {
		ds = []model.Discipline{}
	}
	writeJSON(w, http.StatusOK, ds)
}

func (h *catalogHandler) listMaterials(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repo.MaterialFilter{
		Type:   q.Get("material_type"),
		Brand:  q.Get("brand"),
		Search: q.Get("search"),
	}
	if raw := q.Get("discipline__discipline_id"); raw != "" {
		// an unparsable id drops the constraint, matching the upstream
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.DisciplineID = id
		}
	}

	ms, err := h.catalog.ListMaterials(r.Context(), f)
	if err != nil {
		h.serverError(w, "list materials", err)
		return
	}
	out := make([]materialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toResponse(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *catalogHandler) getMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := materialID(w, r)
	if !ok {
		return
	}
	m, err := h.catalog.GetMaterial(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Not found.")
			return
		}
		h.serverError(w, "get material", err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*m))
}

func (h *catalogHandler) createMaterial(w http.ResponseWriter, r *http.Request) {
	var in service.MaterialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request body.")
		return
	}
	m, err := h.catalog.CreateMaterial(r.Context(), in)
	if err != nil {
		h.mutationError(w, "create material", err)
		return
	}
	writeJSON(w, http.StatusCreated, toResponse(*m))
}

func (h *catalogHandler) updateMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := materialID(w, r)
	if !ok {
		return
	}
	var in service.MaterialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request body.")
		return
	}
	m, err := h.catalog.UpdateMaterial(r.Context(), id, in)
	if err != nil {
		h.mutationError(w, "update material", err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*m))
}

func (h *catalogHandler) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := materialID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.DeleteMaterial(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Not found.")
			return
		}
		h.serverError(w, "delete material", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// mutationError maps validation rejections to the upstream field-keyed 400
// body; anything else is a 500.
func (h *catalogHandler) mutationError(w http.ResponseWriter, op string, err error) {
	var fieldErrs service.FieldErrors
	if errors.As(err, &fieldErrs) {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	h.serverError(w, op, err)
}

func (h *catalogHandler) serverError(w http.ResponseWriter, op string, err error) {
	h.logger.Errorw(op, "error", err)
	writeDetail(w, http.StatusInternalServerError, "Internal server error.")
}

func materialID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return 0, false
	}
	return id, true
}

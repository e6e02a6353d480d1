// Package handlers wires the HTTP routes to the services and shapes the
// JSON bodies to the upstream API contract.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"StockYard/internal/middleware"
	"StockYard/internal/model"
	"StockYard/internal/repo"
	"StockYard/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Authenticator is the slice of the auth service the handlers need.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	VerifyToken(token string) (int64, error)
}

// Catalog is the slice of the catalog service the handlers need.
type Catalog interface {
	ListDisciplines(ctx context.Context) ([]model.Discipline, error)
	ListMaterials(ctx context.Context, f repo.MaterialFilter) ([]service.MaterialWithStock, error)
	GetMaterial(ctx context.Context, id int64) (*service.MaterialWithStock, error)
	CreateMaterial(ctx context.Context, in service.MaterialInput) (*service.MaterialWithStock, error)
	UpdateMaterial(ctx context.Context, id int64, in service.MaterialInput) (*service.MaterialWithStock, error)
	DeleteMaterial(ctx context.Context, id int64) error
}

type Handler struct {
	Router chi.Router
}

// NewHandler builds the router: token-auth and health endpoints are public,
// everything under /api/ besides token-auth requires a token.
func NewHandler(auth Authenticator, catalog Catalog, logger *zap.SugaredLogger) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)
	r.Use(middleware.WithMetrics)

	authHandler := newAuthHandler(auth, logger)
	catalogHandler := newCatalogHandler(catalog, logger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/token-auth/", authHandler.obtainToken)

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithTokenAuth(auth))

		r.Get("/api/disciplines/", catalogHandler.listDisciplines)
		r.Get("/api/materials/", catalogHandler.listMaterials)
		r.Post("/api/materials/", catalogHandler.createMaterial)
		r.Get("/api/materials/{id}/", catalogHandler.getMaterial)
		r.Put("/api/materials/{id}/", catalogHandler.updateMaterial)
		r.Delete("/api/materials/{id}/", catalogHandler.deleteMaterial)
	})

	return &Handler{Router: r}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

package service

import (
	"context"
	"errors"
	"fmt"

	"StockYard/internal/model"
	"StockYard/internal/repo"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("not found")

// FieldErrors is a validation rejection keyed by field name, in the shape
// the upstream API serializes for 400 responses.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string { return "validation failed" }

// MaterialInput is the mutation body for materials. Optional fields arrive
// as null from the client and stay nil here.
type MaterialInput struct {
	Name       string  `json:"material_name"`
	Type       *string `json:"material_type"`
	Unit       string  `json:"unit_of_measure"`
	Brand      *string `json:"brand"`
	Color      *string `json:"color"`
	Size       *string `json:"size"`
	Discipline *int64  `json:"discipline"`
}

// MaterialWithStock is a material plus its ledger-derived current stock.
type MaterialWithStock struct {
	model.Material
	CurrentStock decimal.Decimal
}

// CatalogService implements the disciplines and materials operations.
type CatalogService struct {
	disciplines  repo.DisciplineRepository
	materials    repo.MaterialRepository
	transactions repo.TransactionRepository
}

func NewCatalogService(
	disciplines repo.DisciplineRepository,
	materials repo.MaterialRepository,
	transactions repo.TransactionRepository,
) *CatalogService {
	return &CatalogService{disciplines: disciplines, materials: materials, transactions: transactions}
}

// ListDisciplines returns the reference dimension ordered by id.
func (s *CatalogService) ListDisciplines(ctx context.Context) ([]model.Discipline, error) {
	return s.disciplines.List(ctx)
}

// ListMaterials returns the filtered materials ordered by name, each with its
// current stock attached.
func (s *CatalogService) ListMaterials(ctx context.Context, f repo.MaterialFilter) ([]MaterialWithStock, error) {
	ms, err := s.materials.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	stock, err := s.transactions.StockByMaterial(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate stock: %w", err)
	}
	out := make([]MaterialWithStock, 0, len(ms))
	for _, m := range ms {
		out = append(out, MaterialWithStock{Material: m, CurrentStock: stock[m.ID]})
	}
	return out, nil
}

// GetMaterial returns one material with its current stock.
func (s *CatalogService) GetMaterial(ctx context.Context, id int64) (*MaterialWithStock, error) {
	m, err := s.materials.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	stock, err := s.transactions.StockFor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("aggregate stock: %w", err)
	}
	return &MaterialWithStock{Material: *m, CurrentStock: stock}, nil
}

// CreateMaterial validates and inserts a material. New materials start with
// an empty ledger, so their stock is zero.
func (s *CatalogService) CreateMaterial(ctx context.Context, in MaterialInput) (*MaterialWithStock, error) {
	m, err := s.applyInput(ctx, &model.Material{}, in, 0)
	if err != nil {
		return nil, err
	}
	if err := s.materials.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create material: %w", err)
	}
	return s.GetMaterial(ctx, m.ID)
}

// UpdateMaterial replaces the material wholesale. Missing optional fields
// become empty, never "whatever was there before".
func (s *CatalogService) UpdateMaterial(ctx context.Context, id int64, in MaterialInput) (*MaterialWithStock, error) {
	existing, err := s.materials.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	m, err := s.applyInput(ctx, &model.Material{ID: existing.ID}, in, id)
	if err != nil {
		return nil, err
	}
	if err := s.materials.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update material: %w", err)
	}
	return s.GetMaterial(ctx, id)
}

// DeleteMaterial removes the material; its ledger rows cascade.
func (s *CatalogService) DeleteMaterial(ctx context.Context, id int64) error {
	if _, err := s.materials.Get(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.materials.Delete(ctx, id)
}

// RecordTransaction appends a ledger row.
func (s *CatalogService) RecordTransaction(ctx context.Context, t *model.InventoryTransaction) error {
	return s.transactions.Create(ctx, t)
}

// applyInput validates the input and maps it onto m. excludeID skips the
// record itself in the uniqueness check on update.
func (s *CatalogService) applyInput(ctx context.Context, m *model.Material, in MaterialInput, excludeID int64) (*model.Material, error) {
	fieldErrs := FieldErrors{}
	if in.Name == "" {
		fieldErrs["material_name"] = append(fieldErrs["material_name"], "This field may not be blank.")
	}
	if in.Unit == "" {
		fieldErrs["unit_of_measure"] = append(fieldErrs["unit_of_measure"], "This field may not be blank.")
	}

	if in.Name != "" {
		taken, err := s.materials.NameTaken(ctx, in.Name, excludeID)
		if err != nil {
			return nil, fmt.Errorf("check name uniqueness: %w", err)
		}
		if taken {
			fieldErrs["material_name"] = append(fieldErrs["material_name"],
				"dim material with this material name already exists.")
		}
	}

	if in.Discipline != nil {
		if _, err := s.disciplines.Get(ctx, *in.Discipline); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fieldErrs["discipline"] = append(fieldErrs["discipline"],
					fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *in.Discipline))
			} else {
				return nil, fmt.Errorf("resolve discipline: %w", err)
			}
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	m.Name = in.Name
	m.Unit = in.Unit
	m.Type = deref(in.Type)
	m.Brand = deref(in.Brand)
	m.Color = deref(in.Color)
	m.Size = deref(in.Size)
	m.DisciplineID = in.Discipline
	return m, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

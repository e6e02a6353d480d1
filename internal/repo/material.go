package repo

import (
	"context"

	"StockYard/internal/model"

	"gorm.io/gorm"
)

// MaterialFilter narrows the materials listing. Zero values leave a
// dimension unconstrained; Search matches name, type and brand.
type MaterialFilter struct {
	DisciplineID int64
	Type         string
	Brand        string
	Search       string
}

// MaterialRepository is the contract the catalog service needs for the
// material dimension.
type MaterialRepository interface {
	List(ctx context.Context, f MaterialFilter) ([]model.Material, error)
	Get(ctx context.Context, id int64) (*model.Material, error)
	Create(ctx context.Context, m *model.Material) error
	Update(ctx context.Context, m *model.Material) error
	Delete(ctx context.Context, id int64) error
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
}

type materialRepo struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepo{db: db}
}

func (r *materialRepo) List(ctx context.Context, f MaterialFilter) ([]model.Material, error) {
	q := r.db.WithContext(ctx).Preload("Discipline").Order("material_name")
	if f.DisciplineID != 0 {
		q = q.Where("discipline_id = ?", f.DisciplineID)
	}
	if f.Type != "" {
		q = q.Where("material_type = ?", f.Type)
	}
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("material_name LIKE ? OR material_type LIKE ? OR brand LIKE ?", like, like, like)
	}

	var out []model.Material
	tx := q.Find(&out)
	return out, tx.Error
}

func (r *materialRepo) Get(ctx context.Context, id int64) (*model.Material, error) {
	var m model.Material
	tx := r.db.WithContext(ctx).Preload("Discipline").First(&m, "material_id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	// Save writes all columns, which matches the full-replace PUT semantics.
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Material{}, "material_id = ?", id).Error
}

func (r *materialRepo) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Material{}).Where("material_name = ?", name)
	if excludeID != 0 {
		q = q.Where("material_id <> ?", excludeID)
	}
	if tx := q.Count(&n); tx.Error != nil {
		return false, tx.Error
	}
	return n > 0, nil
}

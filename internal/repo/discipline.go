package repo

import (
	"context"

	"StockYard/internal/model"

	"gorm.io/gorm"
)

// DisciplineRepository is the contract the catalog service needs for the
// reference dimension.
type DisciplineRepository interface {
	List(ctx context.Context) ([]model.Discipline, error)
	Get(ctx context.Context, id int64) (*model.Discipline, error)
	Create(ctx context.Context, d *model.Discipline) error
}

type disciplineRepo struct {
	db *gorm.DB
}

func NewDisciplineRepository(db *gorm.DB) DisciplineRepository {
	return &disciplineRepo{db: db}
}

func (r *disciplineRepo) List(ctx context.Context) ([]model.Discipline, error) {
	var out []model.Discipline
	tx := r.db.WithContext(ctx).Order("discipline_id").Find(&out)
	return out, tx.Error
}

func (r *disciplineRepo) Get(ctx context.Context, id int64) (*model.Discipline, error) {
	var d model.Discipline
	if tx := r.db.WithContext(ctx).First(&d, "discipline_id = ?", id); tx.Error != nil {
		return nil, tx.Error
	}
	return &d, nil
}

func (r *disciplineRepo) Create(ctx context.Context, d *model.Discipline) error {
	return r.db.WithContext(ctx).Create(d).Error
}

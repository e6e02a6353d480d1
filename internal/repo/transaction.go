package repo

import (
	"context"

	"StockYard/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionRepository is the stock ledger. Stock is always derived from it,
// never stored on the material.
type TransactionRepository interface {
	Create(ctx context.Context, t *model.InventoryTransaction) error
	// StockByMaterial sums quantity_change per material over the whole ledger.
	StockByMaterial(ctx context.Context) (map[int64]decimal.Decimal, error)
	// StockFor sums quantity_change for a single material.
	StockFor(ctx context.Context, materialID int64) (decimal.Decimal, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *model.InventoryTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

type stockRow struct {
	MaterialID int64
	Total      decimal.Decimal
}

func (r *transactionRepo) StockByMaterial(ctx context.Context) (map[int64]decimal.Decimal, error) {
	var rows []stockRow
	tx := r.db.WithContext(ctx).
		Model(&model.InventoryTransaction{}).
		Select("material_id, SUM(quantity_change) AS total").
		Group("material_id").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make(map[int64]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.MaterialID] = row.Total
	}
	return out, nil
}

func (r *transactionRepo) StockFor(ctx context.Context, materialID int64) (decimal.Decimal, error) {
	var rows []stockRow
	tx := r.db.WithContext(ctx).
		Model(&model.InventoryTransaction{}).
		Select("material_id, SUM(quantity_change) AS total").
		Where("material_id = ?", materialID).
		Group("material_id").
		Scan(&rows)
	if tx.Error != nil {
		return decimal.Zero, tx.Error
	}
	if len(rows) == 0 {
		return decimal.Zero, nil
	}
	return rows[0].Total, nil
}

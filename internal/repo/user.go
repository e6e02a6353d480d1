package repo

import (
	"context"

	"StockYard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository is the contract the auth service needs.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// CreateIfAbsent inserts the user unless the username exists. Returns
	// created=true when the insert happened in this call.
	CreateIfAbsent(ctx context.Context, u *model.User) (created bool, err error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if tx := r.db.WithContext(ctx).First(&u, "username = ?", username); tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *userRepo) CreateIfAbsent(ctx context.Context, u *model.User) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(u)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

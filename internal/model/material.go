// Package model holds the server-side persistence entities. Column and JSON
// names follow the upstream API contract (discipline_id, material_name, ...),
// so the wire shape falls out of the struct tags.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discipline is a construction trade, the category dimension for materials.
type Discipline struct {
	ID          int64  `gorm:"column:discipline_id;primaryKey" json:"discipline_id"`
	Name        string `gorm:"column:discipline_name;size:50;uniqueIndex;not null" json:"discipline_name"`
	Description string `gorm:"column:discipline_description" json:"discipline_description"`
}

func (Discipline) TableName() string { return "dim_discipline" }

// Material is the inventory item dimension. Stock is never stored here; it is
// the sum of the transaction ledger and is attached at read time.
type Material struct {
	ID           int64       `gorm:"column:material_id;primaryKey" json:"material_id"`
	Name         string      `gorm:"column:material_name;size:100;uniqueIndex;not null" json:"material_name"`
	Type         string      `gorm:"column:material_type;size:50" json:"material_type"`
	Unit         string      `gorm:"column:unit_of_measure;size:20;not null" json:"unit_of_measure"`
	Brand        string      `gorm:"column:brand;size:50" json:"brand"`
	Color        string      `gorm:"column:color;size:50" json:"color"`
	Size         string      `gorm:"column:size;size:50" json:"size"`
	DisciplineID *int64      `gorm:"column:discipline_id;index" json:"-"`
	Discipline   *Discipline `gorm:"foreignKey:DisciplineID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"discipline"`
}

func (Material) TableName() string { return "dim_material" }

// InventoryTransaction is one row of the stock ledger. quantity_change is
// signed: receipts positive, issues negative.
type InventoryTransaction struct {
	ID              int64           `gorm:"column:transaction_id;primaryKey" json:"transaction_id"`
	MaterialID      int64           `gorm:"column:material_id;not null;index" json:"material_id"`
	Material        *Material       `gorm:"foreignKey:MaterialID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	QuantityChange  decimal.Decimal `gorm:"column:quantity_change;type:numeric(10,2);not null" json:"quantity_change"`
	CostPerUnit     decimal.Decimal `gorm:"column:cost_per_unit;type:numeric(10,2)" json:"cost_per_unit"`
	TransactionType string          `gorm:"column:transaction_type;size:50;not null" json:"transaction_type"`
	Notes           string          `gorm:"column:notes" json:"notes"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (InventoryTransaction) TableName() string { return "fact_inventory_transactions" }

// User is an API account. PasswordHash is a bcrypt hash, never the password.
type User struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

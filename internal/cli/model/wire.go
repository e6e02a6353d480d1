// Package model holds the wire representation of the inventory API entities.
package model

import "github.com/shopspring/decimal"

// Discipline is the construction-trade category used to classify materials.
// Read-only reference data from the client's perspective.
type Discipline struct {
	ID          int64  `json:"discipline_id"`
	Name        string `json:"discipline_name"`
	Description string `json:"discipline_description,omitempty"`
}

// Material is the primary inventory entity as the server returns it.
// current_stock is server-computed and arrives as a decimal string; it may be
// absent on freshly created records.
type Material struct {
	ID           int64               `json:"material_id"`
	Name         string              `json:"material_name"`
	Type         string              `json:"material_type"`
	Unit         string              `json:"unit_of_measure"`
	Brand        string              `json:"brand"`
	Color        string              `json:"color"`
	Size         string              `json:"size"`
	Discipline   *Discipline         `json:"discipline"`
	CurrentStock decimal.NullDecimal `json:"current_stock"`
}

// MaterialPayload is the mutation body for create and full-replace update.
// Optional fields are sent as null when unset, matching the upstream contract.
// Note there is no stock field here: stock is never client-settable, and none
// of the display placeholders survive a round trip.
type MaterialPayload struct {
	Name       string  `json:"material_name"`
	Type       *string `json:"material_type"`
	Unit       string  `json:"unit_of_measure"`
	Brand      *string `json:"brand"`
	Color      *string `json:"color"`
	Size       *string `json:"size"`
	Discipline *int64  `json:"discipline"`
}

// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package medicine

import "time"

// Medicine represents a stocked pharmaceutical batch in the clinic inventory.
type Medicine struct {
	ID               string     `json:"id"`
	MasterMedicineID string     `json:"master_medicine_id"`
	BatchNumber      string     `json:"batch_number"`
	TradeName        string     `json:"trade_name"`
	ProductionDate   string     `json:"production_date"` // YYYY-MM-DD
	ExpiredDate      string     `json:"expired_date"`    // YYYY-MM-DD
	PurchasePrice    float64    `json:"purchase_price"`
	SellingPrice     float64    `json:"selling_price"`
	Quantity         float64    `json:"qty"`
	Manufacturer     string     `json:"manufacturer"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated medicine search.
type Filter struct {
	Query        string // ILIKE search against trade name
	Manufacturer string
}

// Global field names for validation
const (
	FieldBatchNumber    = "batch_number"
	FieldTradeName      = "trade_name"
	FieldProductionDate = "production_date"
	FieldExpiredDate    = "expired_date"
	FieldPurchasePrice  = "purchase_price"
	FieldSellingPrice   = "selling_price"
	FieldQuantity       = "qty"
	FieldManufacturer   = "manufacturer"
)

// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package schema

// CoreMedicineTable represents the 'core.medicine' table
type CoreMedicineTable struct {
	Table            string
	ID               string
	MasterMedicineID string
	BatchNumber      string
	TradeName        string
	ProductionDate   string
	ExpiredDate      string
	PurchasePrice    string
	SellingPrice     string
	Quantity         string
	Manufacturer     string
	CreatedAt        string
	UpdatedAt        string
	DeletedAt        string
}

// CoreMedicine is the schema definition for core.medicine
var CoreMedicine = CoreMedicineTable{
	Table:            "core.medicine",
	ID:               "id",
	MasterMedicineID: "mastermedicineid",
	BatchNumber:      "batchnumber",
	TradeName:        "tradename",
	ProductionDate:   "productiondate",
	ExpiredDate:      "expireddate",
	PurchasePrice:    "purchaseprice",
	SellingPrice:     "sellingprice",
	Quantity:         "qty",
	Manufacturer:     "manufacturer",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
	DeletedAt:        "deletedat",
}

func (t CoreMedicineTable) Columns() []string {
	return []string{
		t.ID, t.MasterMedicineID, t.BatchNumber, t.TradeName, t.ProductionDate,
		t.ExpiredDate, t.PurchasePrice, t.SellingPrice, t.Quantity,
		t.Manufacturer, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}

// Package seed datos iniciales del catálogo: bodega demo y carga de productos desde CSV.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// Identificadores fijos de los datos de demostración.
const (
	DemoWarehouseID = "11111111-1111-1111-1111-111111111111"
	DemoStockID     = "22222222-2222-2222-2222-222222222221"
	DemoShelfID     = "22222222-2222-2222-2222-222222222222"
)

// Catalog bodegas, ubicaciones y productos a cargar en un store.
type Catalog struct {
	Warehouses []entity.Warehouse
	Locations  []entity.Location
	Products   []entity.Product
}

// Demo una bodega (WH), dos ubicaciones y tres productos, uno sin stock.
func Demo(now time.Time) Catalog {
	c := Catalog{
		Warehouses: []entity.Warehouse{
			{ID: DemoWarehouseID, Name: "Main Warehouse", ShortCode: "WH", CreatedAt: now, UpdatedAt: now},
		},
		Locations: []entity.Location{
			{ID: DemoStockID, Name: "Stock", ShortCode: "WH/Stock", WarehouseID: DemoWarehouseID},
			{ID: DemoShelfID, Name: "Shelf A", ShortCode: "WH/Shelf-A", WarehouseID: DemoWarehouseID},
		},
		Products: []entity.Product{
			{ID: "33333333-3333-3333-3333-333333333331", SKU: "DESK-001", Name: "Office Desk", Category: "Furniture", Quantity: 40, MinThreshold: 10, Price: decimal.RequireFromString("149.90")},
			{ID: "33333333-3333-3333-3333-333333333332", SKU: "CHAIR-001", Name: "Office Chair", Category: "Furniture", Quantity: 8, MinThreshold: 10, Price: decimal.RequireFromString("89.50")},
			{ID: "33333333-3333-3333-3333-333333333333", SKU: "LAMP-001", Name: "Desk Lamp", Category: "Lighting", Quantity: 0, MinThreshold: 5, Price: decimal.RequireFromString("24.00")},
		},
	}
	for i := range c.Products {
		c.Products[i].LocationID = DemoStockID
		c.Products[i].CreatedAt, c.Products[i].UpdatedAt = now, now
	}
	return c
}

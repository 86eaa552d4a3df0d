package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su stock a nivel global.
// Quantity solo la modifica el libro de stock al finalizar operaciones (o una edición externa del catálogo).
type Product struct {
	ID           string
	SKU          string // único
	Name         string
	Category     string
	Quantity     int64 // nunca negativo
	MinThreshold int64 // umbral de alerta de stock bajo
	Price        decimal.Decimal
	LocationID   string // vacío si no tiene ubicación asignada
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock informa si el producto está en o por debajo de su umbral.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinThreshold
}

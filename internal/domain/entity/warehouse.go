package entity

import "time"

// Warehouse representa una bodega. ShortCode es el prefijo de las referencias (ej. "WH").
type Warehouse struct {
	ID        string
	Name      string
	ShortCode string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location representa una ubicación dentro de una bodega.
type Location struct {
	ID            string
	Name          string
	ShortCode     string
	WarehouseID   string
	WarehouseCode string // short code de la bodega dueña (join, solo lectura)
}

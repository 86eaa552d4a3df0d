package entity

import "time"

// Alert alerta de stock bajo. Quantity y Threshold son una foto al momento de crearla.
// Como máximo existe una alerta sin resolver por producto.
type Alert struct {
	ID         string
	ProductID  string
	Quantity   int64
	Threshold  int64
	Resolved   bool
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

package repository

import (
	"context"
	"time"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// AlertView alerta con el producto resuelto.
type AlertView struct {
	entity.Alert
	ProductSKU  string
	ProductName string
}

// AlertRepository define el puerto de persistencia de alertas de stock bajo.
type AlertRepository interface {
	// CreateIfNoneOpen inserta la alerta solo si el producto no tiene otra sin resolver.
	// Retorna false si ya existía una abierta.
	CreateIfNoneOpen(ctx context.Context, a *entity.Alert) (bool, error)
	GetByID(ctx context.Context, id string) (*AlertView, error)
	List(ctx context.Context, unresolvedOnly bool) ([]AlertView, error)
	// Resolve marca la alerta como resuelta. Devuelve (nil, nil) si no existe.
	Resolve(ctx context.Context, id string, at time.Time) (*AlertView, error)
}

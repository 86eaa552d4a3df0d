package repository

import (
	"context"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// ProductRepository define el puerto de lectura y ajuste de stock de productos.
// Devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	// LockByIDs bloquea las filas (SELECT FOR UPDATE) en orden ascendente de ID.
	// Solo tiene sentido dentro de una transacción. Los IDs inexistentes se omiten.
	LockByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	// ListLowStock productos con quantity <= min_threshold.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
}

package repository

import (
	"context"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// MoveFilter filtros del historial de movimientos.
type MoveFilter struct {
	Direction entity.MoveDirection
	ProductID string
	Limit     int
}

// MoveView movimiento con los datos de referencia ya resueltos para mostrar.
type MoveView struct {
	entity.Move
	OperationType   entity.OperationType
	Reference       string
	ProductSKU      string
	ProductName     string
	SourceCode      string
	DestinationCode string
}

// MoveRepository libro de movimientos (solo inserción).
type MoveRepository interface {
	Create(ctx context.Context, m *entity.Move) error
	ListByOperation(ctx context.Context, operationID string) ([]*entity.Move, error)
	// List más recientes primero.
	List(ctx context.Context, filter MoveFilter) ([]MoveView, error)
}

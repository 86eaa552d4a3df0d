package repository

import (
	"context"
	"time"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// OperationCount conteo de operaciones por tipo y estado.
type OperationCount struct {
	Type   entity.OperationType
	Status entity.OperationStatus
	Count  int64
}

// MoveFlow dato mínimo de un movimiento para el flujo diario.
type MoveFlow struct {
	Direction entity.MoveDirection
	CreatedAt time.Time
}

// MetricsRepository consultas de solo lectura para el tablero.
type MetricsRepository interface {
	CountOperations(ctx context.Context) ([]OperationCount, error)
	ListMoveFlowSince(ctx context.Context, since time.Time) ([]MoveFlow, error)
}

package repository

import (
	"context"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// OperationFilter filtros opcionales del listado (vacío = sin filtro).
type OperationFilter struct {
	Type   entity.OperationType
	Status entity.OperationStatus
}

// OperationRepository define el puerto de persistencia de operaciones y sus ítems.
type OperationRepository interface {
	// Create inserta cabecera e ítems. Asigna IDs a los ítems que no lo tengan.
	Create(ctx context.Context, op *entity.Operation) error
	GetByID(ctx context.Context, id string) (*entity.Operation, error)
	// GetForUpdate igual que GetByID pero bloquea la cabecera (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Operation, error)
	List(ctx context.Context, filter OperationFilter) ([]*entity.Operation, error)
	// ReplaceItems borra todos los ítems y crea los nuevos en orden.
	ReplaceItems(ctx context.Context, operationID string, items []entity.OperationItem) error
	UpdateContact(ctx context.Context, id, contact string) error
	SetItemDone(ctx context.Context, itemID string, done int64) error
	// CompareAndSetStatus cambia el estado solo si el actual es expected. Retorna false si no coincidió.
	CompareAndSetStatus(ctx context.Context, id string, expected, next entity.OperationStatus) (bool, error)
}

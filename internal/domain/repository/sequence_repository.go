package repository

import "context"

// SequenceRepository contador atómico por (bodega, dirección) para las referencias.
// Dentro de una transacción, un rollback revierte también el incremento.
type SequenceRepository interface {
	Next(ctx context.Context, warehouseCode, directionCode string) (int64, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador por (bodega, dirección). El upsert bloquea la fila hasta el
// fin de la transacción, así dos creaciones concurrentes nunca obtienen el mismo número.
type SequenceRepo struct {
	q Querier
}

func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

func (r *SequenceRepo) Next(ctx context.Context, warehouseCode, directionCode string) (int64, error) {
	query := `
		INSERT INTO reference_sequences (warehouse_code, direction_code, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (warehouse_code, direction_code)
		DO UPDATE SET last_value = reference_sequences.last_value + 1
		RETURNING last_value`
	var n int64
	if err := r.q.QueryRow(ctx, query, warehouseCode, directionCode).Scan(&n); err != nil {
		return 0, fmt.Errorf("next reference sequence: %w", err)
	}
	return n, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo consultas agregadas del tablero (solo lectura, sobre el pool).
type MetricsRepo struct {
	q Querier
}

func NewMetricsRepository(q Querier) *MetricsRepo {
	return &MetricsRepo{q: q}
}

func (r *MetricsRepo) CountOperations(ctx context.Context) ([]repository.OperationCount, error) {
	rows, err := r.q.Query(ctx, `SELECT type, status, COUNT(*) FROM operations GROUP BY type, status`)
	if err != nil {
		return nil, fmt.Errorf("count operations: %w", err)
	}
	defer rows.Close()
	var out []repository.OperationCount
	for rows.Next() {
		var typ, status string
		var c repository.OperationCount
		if err := rows.Scan(&typ, &status, &c.Count); err != nil {
			return nil, fmt.Errorf("scan operation count: %w", err)
		}
		c.Type = entity.OperationType(typ)
		c.Status = entity.OperationStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *MetricsRepo) ListMoveFlowSince(ctx context.Context, since time.Time) ([]repository.MoveFlow, error) {
	rows, err := r.q.Query(ctx, `SELECT direction, created_at FROM moves WHERE created_at >= $1`, since)
	if err != nil {
		return nil, fmt.Errorf("list move flow: %w", err)
	}
	defer rows.Close()
	var out []repository.MoveFlow
	for rows.Next() {
		var direction string
		var f repository.MoveFlow
		if err := rows.Scan(&direction, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan move flow: %w", err)
		}
		f.Direction = entity.MoveDirection(direction)
		out = append(out, f)
	}
	return out, rows.Err()
}

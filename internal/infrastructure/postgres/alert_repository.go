package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertSelect = `
	SELECT a.id, a.product_id, a.quantity, a.threshold, a.resolved, a.created_at, a.resolved_at,
		COALESCE(p.sku, ''), COALESCE(p.name, '')
	FROM alerts a
	LEFT JOIN products p ON p.id = a.product_id`

// AlertRepo alertas de stock bajo. El índice parcial alerts_one_open_per_product
// garantiza una sola alerta abierta por producto.
type AlertRepo struct {
	q Querier
}

func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

func scanAlert(row pgx.Row) (*repository.AlertView, error) {
	var v repository.AlertView
	err := row.Scan(
		&v.ID, &v.ProductID, &v.Quantity, &v.Threshold, &v.Resolved, &v.CreatedAt, &v.ResolvedAt,
		&v.ProductSKU, &v.ProductName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *AlertRepo) CreateIfNoneOpen(ctx context.Context, a *entity.Alert) (bool, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO alerts (id, product_id, quantity, threshold, resolved, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		ON CONFLICT (product_id) WHERE NOT resolved DO NOTHING`
	tag, err := r.q.Exec(ctx, query, a.ID, a.ProductID, a.Quantity, a.Threshold, a.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("create alert: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AlertRepo) GetByID(ctx context.Context, id string) (*repository.AlertView, error) {
	if !validUUID(id) {
		return nil, nil
	}
	v, err := scanAlert(r.q.QueryRow(ctx, alertSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return v, nil
}

func (r *AlertRepo) List(ctx context.Context, unresolvedOnly bool) ([]repository.AlertView, error) {
	query := alertSelect
	if unresolvedOnly {
		query += ` WHERE NOT a.resolved`
	}
	query += ` ORDER BY a.created_at DESC, a.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []repository.AlertView
	for rows.Next() {
		v, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, *v)
	}
	return list, rows.Err()
}

// Resolve es idempotente: una alerta ya resuelta conserva su resolved_at original.
func (r *AlertRepo) Resolve(ctx context.Context, id string, at time.Time) (*repository.AlertView, error) {
	if !validUUID(id) {
		return nil, nil
	}
	tag, err := r.q.Exec(ctx,
		`UPDATE alerts SET resolved = true, resolved_at = COALESCE(resolved_at, $2) WHERE id = $1`, id, at)
	if err != nil {
		return nil, fmt.Errorf("resolve alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

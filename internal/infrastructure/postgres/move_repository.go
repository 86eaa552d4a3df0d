package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

var _ repository.MoveRepository = (*MoveRepo)(nil)

const moveColumns = `m.id, m.operation_id, m.operation_item_id, m.product_id, m.quantity, m.direction,
	m.source_location_id, m.destination_location_id, m.contact, m.status, m.created_at`

// MoveRepo libro de movimientos. Solo inserción: no hay UPDATE ni DELETE sobre moves.
type MoveRepo struct {
	q Querier
}

func NewMoveRepository(q Querier) *MoveRepo {
	return &MoveRepo{q: q}
}

func scanMove(row pgx.Row, extra ...any) (*entity.Move, error) {
	var m entity.Move
	var direction string
	var src, dst *string
	dest := append([]any{
		&m.ID, &m.OperationID, &m.OperationItemID, &m.ProductID, &m.Quantity, &direction,
		&src, &dst, &m.Contact, &m.Status, &m.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	m.Direction = entity.MoveDirection(direction)
	m.SourceLocationID = deref(src)
	m.DestinationLocationID = deref(dst)
	return &m, nil
}

// Create el UNIQUE sobre operation_item_id impide registrar dos veces la misma línea.
func (r *MoveRepo) Create(ctx context.Context, m *entity.Move) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO moves (id, operation_id, operation_item_id, product_id, quantity, direction,
			source_location_id, destination_location_id, contact, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.OperationID, m.OperationItemID, m.ProductID, m.Quantity, string(m.Direction),
		nullable(m.SourceLocationID), nullable(m.DestinationLocationID), m.Contact, m.Status, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: movimiento de la línea %s", domain.ErrDuplicate, m.OperationItemID)
		}
		return fmt.Errorf("create move: %w", err)
	}
	return nil
}

func (r *MoveRepo) ListByOperation(ctx context.Context, operationID string) ([]*entity.Move, error) {
	if !validUUID(operationID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+moveColumns+` FROM moves m WHERE m.operation_id = $1 ORDER BY m.created_at, m.id`, operationID)
	if err != nil {
		return nil, fmt.Errorf("list moves by operation: %w", err)
	}
	defer rows.Close()
	var list []*entity.Move
	for rows.Next() {
		m, err := scanMove(rows)
		if err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MoveRepo) List(ctx context.Context, filter repository.MoveFilter) ([]repository.MoveView, error) {
	var conds []string
	var args []any
	if filter.Direction != "" {
		args = append(args, string(filter.Direction))
		conds = append(conds, fmt.Sprintf("m.direction = $%d", len(args)))
	}
	if filter.ProductID != "" {
		if !validUUID(filter.ProductID) {
			return nil, nil
		}
		args = append(args, filter.ProductID)
		conds = append(conds, fmt.Sprintf("m.product_id = $%d", len(args)))
	}
	query := `
		SELECT ` + moveColumns + `,
			o.type, o.reference, COALESCE(p.sku, ''), COALESCE(p.name, ''),
			COALESCE(sl.short_code, ''), COALESCE(dl.short_code, '')
		FROM moves m
		JOIN operations o ON o.id = m.operation_id
		LEFT JOIN products p ON p.id = m.product_id
		LEFT JOIN locations sl ON sl.id = m.source_location_id
		LEFT JOIN locations dl ON dl.id = m.destination_location_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY m.created_at DESC, m.id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()
	var list []repository.MoveView
	for rows.Next() {
		var v repository.MoveView
		var opType string
		m, err := scanMove(rows, &opType, &v.Reference, &v.ProductSKU, &v.ProductName, &v.SourceCode, &v.DestinationCode)
		if err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		v.Move = *m
		v.OperationType = entity.OperationType(opType)
		list = append(list, v)
	}
	return list, rows.Err()
}

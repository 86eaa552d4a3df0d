package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

const operationSelect = `
	SELECT o.id, o.reference, o.type, o.status, o.contact, o.schedule_date,
		o.source_location_id, o.destination_location_id,
		COALESCE(sl.short_code, ''), COALESCE(dl.short_code, ''),
		o.created_at, o.updated_at
	FROM operations o
	LEFT JOIN locations sl ON sl.id = o.source_location_id
	LEFT JOIN locations dl ON dl.id = o.destination_location_id`

// OperationRepo cabeceras en operations, líneas en operation_items.
type OperationRepo struct {
	q Querier
}

func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

func scanOperation(row pgx.Row) (*entity.Operation, error) {
	var op entity.Operation
	var typ, status string
	var src, dst *string
	if err := row.Scan(
		&op.ID, &op.Reference, &typ, &status, &op.Contact, &op.ScheduleDate,
		&src, &dst, &op.SourceCode, &op.DestinationCode, &op.CreatedAt, &op.UpdatedAt,
	); err != nil {
		return nil, err
	}
	op.Type = entity.OperationType(typ)
	op.Status = entity.OperationStatus(status)
	op.SourceLocationID = deref(src)
	op.DestinationLocationID = deref(dst)
	return &op, nil
}

// Create inserta cabecera e ítems.
func (r *OperationRepo) Create(ctx context.Context, op *entity.Operation) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if op.CreatedAt.IsZero() {
		op.CreatedAt = now
	}
	if op.UpdatedAt.IsZero() {
		op.UpdatedAt = op.CreatedAt
	}
	query := `
		INSERT INTO operations (id, reference, type, status, contact, schedule_date,
			source_location_id, destination_location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		op.ID, op.Reference, string(op.Type), string(op.Status), op.Contact, op.ScheduleDate,
		nullable(op.SourceLocationID), nullable(op.DestinationLocationID), op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: referencia %s", domain.ErrDuplicate, op.Reference)
		}
		return fmt.Errorf("create operation: %w", err)
	}
	return r.insertItems(ctx, op.ID, op.Items)
}

func (r *OperationRepo) insertItems(ctx context.Context, operationID string, items []entity.OperationItem) error {
	query := `
		INSERT INTO operation_items (id, operation_id, position, product_id, quantity, done)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range items {
		it := &items[i]
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		it.OperationID = operationID
		if _, err := r.q.Exec(ctx, query, it.ID, operationID, it.Position, it.ProductID, it.Quantity, it.Done); err != nil {
			return fmt.Errorf("create operation item: %w", err)
		}
	}
	return nil
}

func (r *OperationRepo) GetByID(ctx context.Context, id string) (*entity.Operation, error) {
	return r.getOne(ctx, operationSelect+` WHERE o.id = $1`, id)
}

// GetForUpdate bloquea solo la cabecera; las líneas se leen después con el bloqueo tomado.
func (r *OperationRepo) GetForUpdate(ctx context.Context, id string) (*entity.Operation, error) {
	return r.getOne(ctx, operationSelect+` WHERE o.id = $1 FOR UPDATE OF o`, id)
}

func (r *OperationRepo) getOne(ctx context.Context, query, id string) (*entity.Operation, error) {
	if !validUUID(id) {
		return nil, nil
	}
	op, err := scanOperation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	items, err := r.loadItems(ctx, []string{op.ID})
	if err != nil {
		return nil, err
	}
	op.Items = items[op.ID]
	return op, nil
}

// loadItems carga las líneas de varias operaciones en una sola consulta.
func (r *OperationRepo) loadItems(ctx context.Context, operationIDs []string) (map[string][]entity.OperationItem, error) {
	out := make(map[string][]entity.OperationItem, len(operationIDs))
	if len(operationIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, operation_id, position, product_id, quantity, done
		FROM operation_items
		WHERE operation_id = ANY($1::text[]::uuid[])
		ORDER BY operation_id, position`, operationIDs)
	if err != nil {
		return nil, fmt.Errorf("list operation items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OperationItem
		if err := rows.Scan(&it.ID, &it.OperationID, &it.Position, &it.ProductID, &it.Quantity, &it.Done); err != nil {
			return nil, fmt.Errorf("scan operation item: %w", err)
		}
		out[it.OperationID] = append(out[it.OperationID], it)
	}
	return out, rows.Err()
}

// List más recientes primero.
func (r *OperationRepo) List(ctx context.Context, filter repository.OperationFilter) ([]*entity.Operation, error) {
	var conds []string
	var args []any
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conds = append(conds, fmt.Sprintf("o.type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("o.status = $%d", len(args)))
	}
	query := operationSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY o.created_at DESC, o.reference DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operation
	var ids []string
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		list = append(list, op)
		ids = append(ids, op.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, op := range list {
		op.Items = items[op.ID]
	}
	return list, nil
}

func (r *OperationRepo) ReplaceItems(ctx context.Context, operationID string, items []entity.OperationItem) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM operation_items WHERE operation_id = $1`, operationID); err != nil {
		return fmt.Errorf("delete operation items: %w", err)
	}
	if err := r.insertItems(ctx, operationID, items); err != nil {
		return err
	}
	return r.touch(ctx, operationID)
}

func (r *OperationRepo) UpdateContact(ctx context.Context, id, contact string) error {
	tag, err := r.q.Exec(ctx, `UPDATE operations SET contact = $2, updated_at = now() WHERE id = $1`, id, contact)
	if err != nil {
		return fmt.Errorf("update operation contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OperationRepo) SetItemDone(ctx context.Context, itemID string, done int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE operation_items SET done = $2 WHERE id = $1`, itemID, done)
	if err != nil {
		return fmt.Errorf("set item done: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CompareAndSetStatus la condición sobre status hace que solo una de dos transiciones
// concurrentes desde el mismo estado tenga efecto.
func (r *OperationRepo) CompareAndSetStatus(ctx context.Context, id string, expected, next entity.OperationStatus) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE operations SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, string(expected), string(next))
	if err != nil {
		return false, fmt.Errorf("update operation status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OperationRepo) touch(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `UPDATE operations SET updated_at = now() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("touch operation: %w", err)
	}
	return nil
}

package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

// OperationRepo implementa repository.OperationRepository.
type OperationRepo struct{ v view }

var _ repository.OperationRepository = (*OperationRepo)(nil)

// withCodes devuelve una copia con los short codes de ubicación resueltos.
func withCodes(st *state, op entity.Operation) *entity.Operation {
	out := copyOperation(op)
	if l, ok := st.locations[out.SourceLocationID]; ok {
		out.SourceCode = l.ShortCode
	}
	if l, ok := st.locations[out.DestinationLocationID]; ok {
		out.DestinationCode = l.ShortCode
	}
	return &out
}

func (r *OperationRepo) Create(_ context.Context, op *entity.Operation) error {
	return r.v.write(func(st *state) error {
		if _, exists := st.operations[op.ID]; exists {
			return fmt.Errorf("%w: operación %s", domain.ErrDuplicate, op.ID)
		}
		for _, other := range st.operations {
			if other.Reference == op.Reference {
				return fmt.Errorf("%w: referencia %s", domain.ErrDuplicate, op.Reference)
			}
		}
		for i := range op.Items {
			if op.Items[i].ID == "" {
				op.Items[i].ID = uuid.New().String()
			}
			op.Items[i].OperationID = op.ID
		}
		st.operations[op.ID] = copyOperation(*op)
		st.opOrder = append(st.opOrder, op.ID)
		return nil
	})
}

func (r *OperationRepo) GetByID(_ context.Context, id string) (*entity.Operation, error) {
	var out *entity.Operation
	err := r.v.read(func(st *state) error {
		if op, ok := st.operations[id]; ok {
			out = withCodes(st, op)
		}
		return nil
	})
	return out, err
}

// GetForUpdate la exclusión la da la transacción serializada del store.
func (r *OperationRepo) GetForUpdate(ctx context.Context, id string) (*entity.Operation, error) {
	return r.GetByID(ctx, id)
}

func (r *OperationRepo) List(_ context.Context, filter repository.OperationFilter) ([]*entity.Operation, error) {
	out := []*entity.Operation{}
	err := r.v.read(func(st *state) error {
		for i := len(st.opOrder) - 1; i >= 0; i-- {
			op := st.operations[st.opOrder[i]]
			if filter.Type != "" && op.Type != filter.Type {
				continue
			}
			if filter.Status != "" && op.Status != filter.Status {
				continue
			}
			out = append(out, withCodes(st, op))
		}
		return nil
	})
	return out, err
}

func (r *OperationRepo) update(id string, fn func(op *entity.Operation) error) error {
	return r.v.write(func(st *state) error {
		op, ok := st.operations[id]
		if !ok {
			return domain.ErrNotFound
		}
		if err := fn(&op); err != nil {
			return err
		}
		op.UpdatedAt = time.Now()
		st.operations[id] = op
		return nil
	})
}

func (r *OperationRepo) ReplaceItems(_ context.Context, operationID string, items []entity.OperationItem) error {
	return r.update(operationID, func(op *entity.Operation) error {
		op.Items = make([]entity.OperationItem, 0, len(items))
		for i, it := range items {
			if it.ID == "" {
				it.ID = uuid.New().String()
			}
			it.OperationID = operationID
			it.Position = i
			op.Items = append(op.Items, it)
		}
		return nil
	})
}

func (r *OperationRepo) UpdateContact(_ context.Context, id, contact string) error {
	return r.update(id, func(op *entity.Operation) error {
		op.Contact = contact
		return nil
	})
}

func (r *OperationRepo) SetItemDone(_ context.Context, itemID string, done int64) error {
	return r.v.write(func(st *state) error {
		for id, op := range st.operations {
			for i := range op.Items {
				if op.Items[i].ID == itemID {
					op.Items[i].Done = done
					st.operations[id] = op
					return nil
				}
			}
		}
		return domain.ErrNotFound
	})
}

func (r *OperationRepo) CompareAndSetStatus(_ context.Context, id string, expected, next entity.OperationStatus) (bool, error) {
	swapped := false
	err := r.v.write(func(st *state) error {
		op, ok := st.operations[id]
		if !ok || op.Status != expected {
			return nil
		}
		op.Status = next
		op.UpdatedAt = time.Now()
		st.operations[id] = op
		swapped = true
		return nil
	})
	return swapped, err
}

// ─── Movimientos ─────────────────────────────────────────────────────────────

// MoveRepo implementa repository.MoveRepository.
type MoveRepo struct{ v view }

var _ repository.MoveRepository = (*MoveRepo)(nil)

func (r *MoveRepo) Create(_ context.Context, m *entity.Move) error {
	return r.v.write(func(st *state) error {
		for _, existing := range st.moves {
			if m.OperationItemID != "" && existing.OperationItemID == m.OperationItemID {
				return fmt.Errorf("%w: movimiento para el ítem %s", domain.ErrDuplicate, m.OperationItemID)
			}
		}
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		st.moves = append(st.moves, *m)
		return nil
	})
}

func (r *MoveRepo) ListByOperation(_ context.Context, operationID string) ([]*entity.Move, error) {
	var out []*entity.Move
	err := r.v.read(func(st *state) error {
		for _, m := range st.moves {
			if m.OperationID == operationID {
				m := m
				out = append(out, &m)
			}
		}
		return nil
	})
	return out, err
}

func (r *MoveRepo) List(_ context.Context, filter repository.MoveFilter) ([]repository.MoveView, error) {
	out := []repository.MoveView{}
	err := r.v.read(func(st *state) error {
		for i := len(st.moves) - 1; i >= 0; i-- {
			m := st.moves[i]
			if filter.Direction != "" && m.Direction != filter.Direction {
				continue
			}
			if filter.ProductID != "" && m.ProductID != filter.ProductID {
				continue
			}
			v := repository.MoveView{Move: m}
			if op, ok := st.operations[m.OperationID]; ok {
				v.Reference = op.Reference
				v.OperationType = op.Type
			}
			if p, ok := st.products[m.ProductID]; ok {
				v.ProductSKU, v.ProductName = p.SKU, p.Name
			}
			if l, ok := st.locations[m.SourceLocationID]; ok {
				v.SourceCode = l.ShortCode
			}
			if l, ok := st.locations[m.DestinationLocationID]; ok {
				v.DestinationCode = l.ShortCode
			}
			out = append(out, v)
			if filter.Limit > 0 && len(out) >= filter.Limit {
				break
			}
		}
		return nil
	})
	return out, err
}

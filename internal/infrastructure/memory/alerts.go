package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

// AlertRepo implementa repository.AlertRepository.
type AlertRepo struct{ v view }

var _ repository.AlertRepository = (*AlertRepo)(nil)

func alertView(st *state, a entity.Alert) repository.AlertView {
	v := repository.AlertView{Alert: copyAlert(a)}
	if p, ok := st.products[a.ProductID]; ok {
		v.ProductSKU, v.ProductName = p.SKU, p.Name
	}
	return v
}

// CreateIfNoneOpen la verificación y la inserción ocurren bajo el mismo candado de escritura.
func (r *AlertRepo) CreateIfNoneOpen(_ context.Context, a *entity.Alert) (bool, error) {
	created := false
	err := r.v.write(func(st *state) error {
		for _, existing := range st.alerts {
			if existing.ProductID == a.ProductID && !existing.Resolved {
				return nil
			}
		}
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		st.alerts = append(st.alerts, copyAlert(*a))
		created = true
		return nil
	})
	return created, err
}

func (r *AlertRepo) GetByID(_ context.Context, id string) (*repository.AlertView, error) {
	var out *repository.AlertView
	err := r.v.read(func(st *state) error {
		for _, a := range st.alerts {
			if a.ID == id {
				v := alertView(st, a)
				out = &v
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *AlertRepo) List(_ context.Context, unresolvedOnly bool) ([]repository.AlertView, error) {
	out := []repository.AlertView{}
	err := r.v.read(func(st *state) error {
		for i := len(st.alerts) - 1; i >= 0; i-- {
			a := st.alerts[i]
			if unresolvedOnly && a.Resolved {
				continue
			}
			out = append(out, alertView(st, a))
		}
		return nil
	})
	return out, err
}

// Resolve sobre una alerta ya resuelta conserva la fecha original.
func (r *AlertRepo) Resolve(_ context.Context, id string, at time.Time) (*repository.AlertView, error) {
	var out *repository.AlertView
	err := r.v.write(func(st *state) error {
		for i := range st.alerts {
			if st.alerts[i].ID != id {
				continue
			}
			if !st.alerts[i].Resolved {
				st.alerts[i].Resolved = true
				resolvedAt := at
				st.alerts[i].ResolvedAt = &resolvedAt
			}
			v := alertView(st, st.alerts[i])
			out = &v
			return nil
		}
		return nil
	})
	return out, err
}

// ─── Métricas ────────────────────────────────────────────────────────────────

// MetricsRepo implementa repository.MetricsRepository.
type MetricsRepo struct{ v view }

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

func (r *MetricsRepo) CountOperations(_ context.Context) ([]repository.OperationCount, error) {
	var out []repository.OperationCount
	err := r.v.read(func(st *state) error {
		type key struct {
			t entity.OperationType
			s entity.OperationStatus
		}
		counts := make(map[key]int64)
		for _, op := range st.operations {
			counts[key{op.Type, op.Status}]++
		}
		for k, n := range counts {
			out = append(out, repository.OperationCount{Type: k.t, Status: k.s, Count: n})
		}
		return nil
	})
	return out, err
}

func (r *MetricsRepo) ListMoveFlowSince(_ context.Context, since time.Time) ([]repository.MoveFlow, error) {
	var out []repository.MoveFlow
	err := r.v.read(func(st *state) error {
		for _, m := range st.moves {
			if !m.CreatedAt.Before(since) {
				out = append(out, repository.MoveFlow{Direction: m.Direction, CreatedAt: m.CreatedAt})
			}
		}
		return nil
	})
	return out, err
}

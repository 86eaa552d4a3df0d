package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

// AddWarehouse registra una bodega (catálogo externo al núcleo).
func (s *Store) AddWarehouse(w entity.Warehouse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.warehouses[w.ID] = w
}

// AddLocation registra una ubicación.
func (s *Store) AddLocation(l entity.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.locations[l.ID] = l
}

// AddProduct registra o reemplaza un producto.
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.products[p.ID] = p
}

// DeleteProduct elimina un producto del catálogo.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.st.products, id)
}

// ─── Productos ───────────────────────────────────────────────────────────────

// ProductRepo implementa repository.ProductRepository.
type ProductRepo struct{ v view }

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.read(func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.v.read(func(st *state) error {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if p, ok := st.products[id]; ok {
				out = append(out, &p)
			}
		}
		return nil
	})
	return out, err
}

// LockByIDs dentro de una tx del store el acceso ya es exclusivo; solo ordena.
func (r *ProductRepo) LockByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	out, err := r.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	return r.v.write(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		if quantity < 0 {
			return fmt.Errorf("%w: cantidad negativa para %s", domain.ErrConflict, p.SKU)
		}
		p.Quantity = quantity
		st.products[id] = p
		return nil
	})
}

func (r *ProductRepo) ListLowStock(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.v.read(func(st *state) error {
		for _, p := range st.products {
			if p.IsLowStock() {
				p := p
				out = append(out, &p)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

// ─── Ubicaciones ─────────────────────────────────────────────────────────────

// LocationRepo implementa repository.LocationRepository.
type LocationRepo struct{ v view }

var _ repository.LocationRepository = (*LocationRepo)(nil)

func (r *LocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	var out *entity.Location
	err := r.v.read(func(st *state) error {
		l, ok := st.locations[id]
		if !ok {
			return nil
		}
		if w, ok := st.warehouses[l.WarehouseID]; ok {
			l.WarehouseCode = w.ShortCode
		}
		out = &l
		return nil
	})
	return out, err
}

// ─── Secuencias ──────────────────────────────────────────────────────────────

// SequenceRepo implementa repository.SequenceRepository.
type SequenceRepo struct{ v view }

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

func (r *SequenceRepo) Next(_ context.Context, warehouseCode, directionCode string) (int64, error) {
	var next int64
	err := r.v.write(func(st *state) error {
		key := warehouseCode + "/" + directionCode
		st.sequences[key]++
		next = st.sequences[key]
		return nil
	})
	return next, err
}

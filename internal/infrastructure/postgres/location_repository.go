package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo ubicaciones con el short code de su bodega.
type LocationRepo struct {
	q Querier
}

func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	if !validUUID(id) {
		return nil, nil
	}
	query := `
		SELECT l.id, l.name, l.short_code, l.warehouse_id, w.short_code
		FROM locations l
		JOIN warehouses w ON w.id = l.warehouse_id
		WHERE l.id = $1`
	var l entity.Location
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.Name, &l.ShortCode, &l.WarehouseID, &l.WarehouseCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

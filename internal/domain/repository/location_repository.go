package repository

import (
	"context"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// LocationRepository resuelve ubicaciones junto con el short code de su bodega.
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Location, error)
}

package inventory

import (
	"context"
	"fmt"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	ledger "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

// DefaultWarehouseCode prefijo cuando la ubicación no resuelve una bodega.
const DefaultWarehouseCode = "WH"

// FormatReference arma la referencia {bodega}/{dirección}/{secuencia con 4 dígitos}.
func FormatReference(warehouseCode, directionCode string, seq int64) string {
	return fmt.Sprintf("%s/%s/%04d", warehouseCode, directionCode, seq)
}

// nextReference consume el siguiente valor del contador (bodega, dirección) dentro de la tx del llamador.
func nextReference(ctx context.Context, seqs repository.SequenceRepository, h ledger.Handler, loc *entity.Location) (string, error) {
	code := DefaultWarehouseCode
	if loc != nil && loc.WarehouseCode != "" {
		code = loc.WarehouseCode
	}
	seq, err := seqs.Next(ctx, code, h.DirectionCode())
	if err != nil {
		return "", fmt.Errorf("secuencia de referencia: %w", err)
	}
	return FormatReference(code, h.DirectionCode(), seq), nil
}

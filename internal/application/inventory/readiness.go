package inventory

import (
	"context"
	"errors"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	ledger "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

// RefreshReadiness revisa las operaciones en WAITING y promueve a READY las que ya tienen stock
// suficiente para todos sus ítems. Es idempotente: nunca degrada READY a WAITING.
// Retorna cuántas operaciones promovió.
func (uc *OperationUseCase) RefreshReadiness(ctx context.Context) (int, error) {
	waiting, err := uc.operations.List(ctx, repository.OperationFilter{Status: entity.StatusWaiting})
	if err != nil {
		return 0, err
	}

	promoted := 0
	for _, candidate := range waiting {
		h, err := ledger.HandlerFor(candidate.Type)
		if err != nil || !h.NeedsStock() {
			continue
		}
		var changed bool
		err = uc.txRunner.Run(ctx, func(r TxRepos) error {
			op, err := r.Operations.GetForUpdate(ctx, candidate.ID)
			if err != nil || op == nil || op.Status != entity.StatusWaiting {
				return err
			}
			onHand, err := resolveProducts(ctx, r.Products, op.Items)
			if errors.Is(err, domain.ErrInvalidInput) {
				// Un producto eliminado deja la operación en espera.
				return nil
			}
			if err != nil {
				return err
			}
			if ledger.Availability(op.Items, onHand) != entity.StatusReady {
				return nil
			}
			changed, err = r.Operations.CompareAndSetStatus(ctx, op.ID, entity.StatusWaiting, entity.StatusReady)
			return err
		})
		if err != nil {
			return promoted, err
		}
		if changed {
			promoted++
			uc.log.Info().Str("reference", candidate.Reference).Msg("operación lista para despacho")
		}
	}
	return promoted, nil
}

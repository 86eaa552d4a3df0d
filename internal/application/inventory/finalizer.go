package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	ledger "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/inventory"
)

// finalize aplica el efecto de cada ítem sobre el stock, registra un movimiento por ítem y pasa
// la operación a DONE. Corre dentro de la transacción de UpdateStatus con la cabecera ya bloqueada;
// cualquier error revierte todo y la operación conserva su estado anterior.
func (uc *OperationUseCase) finalize(ctx context.Context, r TxRepos, op *entity.Operation) error {
	h, err := ledger.HandlerFor(op.Type)
	if err != nil {
		return err
	}

	// Bloqueo en orden ascendente de ID para evitar deadlocks entre finalizaciones concurrentes.
	ids := uniqueSorted(op.ProductIDs())
	locked, err := r.Products.LockByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.Product, len(locked))
	for _, p := range locked {
		byID[p.ID] = p
	}

	now := uc.now()
	for _, it := range op.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			return fmt.Errorf("%w: %s (operación %s)", domain.ErrProductMissing, it.ProductID, op.Reference)
		}
		eff := h.Apply(p.Quantity, it)
		if eff.NewQuantity < 0 {
			return fmt.Errorf("%w: el stock de %s quedaría negativo", domain.ErrConflict, p.SKU)
		}
		if eff.NewQuantity != p.Quantity {
			if err := r.Products.UpdateQuantity(ctx, p.ID, eff.NewQuantity); err != nil {
				return err
			}
			p.Quantity = eff.NewQuantity
		}
		if err := r.Operations.SetItemDone(ctx, it.ID, eff.Applied); err != nil {
			return err
		}
		src, dst := h.MoveLocations(op, eff)
		move := &entity.Move{
			ID:                    uuid.New().String(),
			OperationID:           op.ID,
			OperationItemID:       it.ID,
			ProductID:             it.ProductID,
			Quantity:              eff.MoveQuantity,
			Direction:             eff.Direction,
			SourceLocationID:      src,
			DestinationLocationID: dst,
			Contact:               op.Contact,
			Status:                entity.MoveStatusDone,
			CreatedAt:             now,
		}
		if err := r.Moves.Create(ctx, move); err != nil {
			return err
		}
	}

	ok, err := r.Operations.CompareAndSetStatus(ctx, op.ID, op.Status, entity.StatusDone)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAlreadyFinalized
	}
	uc.log.Debug().Str("reference", op.Reference).Int("moves", len(op.Items)).Msg("libro de stock aplicado")
	return nil
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

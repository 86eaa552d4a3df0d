package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	ledger "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
)

// OperationUseCase ciclo de vida de las operaciones de bodega: creación, edición de borradores,
// cambios de estado y finalización contra el libro de stock.
type OperationUseCase struct {
	txRunner   TxRunner
	operations repository.OperationRepository
	moves      repository.MoveRepository
	products   repository.ProductRepository
	slips      SlipRenderer
	log        *logger.Logger
	now        func() time.Time
}

// NewOperationUseCase construye el caso de uso. slips puede ser nil (comprobante deshabilitado).
func NewOperationUseCase(
	txRunner TxRunner,
	operations repository.OperationRepository,
	moves repository.MoveRepository,
	products repository.ProductRepository,
	slips SlipRenderer,
	log *logger.Logger,
) *OperationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OperationUseCase{
		txRunner:   txRunner,
		operations: operations,
		moves:      moves,
		products:   products,
		slips:      slips,
		log:        log.Component("operations"),
		now:        time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *OperationUseCase) WithClock(now func() time.Time) *OperationUseCase {
	uc.now = now
	return uc
}

// ItemInput línea solicitada.
type ItemInput struct {
	ProductID string
	Quantity  int64
}

// CreateOperationInput entrada de Create. LocationID es destino en recepciones y ajustes,
// origen en entregas y traslados.
type CreateOperationInput struct {
	Type                  entity.OperationType
	ScheduleDate          time.Time
	Contact               string
	LocationID            string
	DestinationLocationID string
	Items                 []ItemInput
}

// UpdateDraftInput campos opcionales; nil = no modificar.
type UpdateDraftInput struct {
	Contact *string
	Items   *[]ItemInput
}

// buildItems valida cantidades y duplicados y arma los ítems en orden.
func buildItems(h ledger.Handler, operationID string, in []ItemInput) ([]entity.OperationItem, error) {
	seen := make(map[string]struct{}, len(in))
	items := make([]entity.OperationItem, 0, len(in))
	for i, it := range in {
		if it.ProductID == "" {
			return nil, fmt.Errorf("%w: items[%d].productId es obligatorio", domain.ErrInvalidInput, i)
		}
		if _, dup := seen[it.ProductID]; dup {
			return nil, fmt.Errorf("%w: producto %s repetido en la operación", domain.ErrInvalidInput, it.ProductID)
		}
		seen[it.ProductID] = struct{}{}
		if err := h.ValidateQuantity(it.Quantity); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, entity.OperationItem{
			ID:          uuid.New().String(),
			OperationID: operationID,
			Position:    i,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
		})
	}
	return items, nil
}

// resolveProducts verifica que todos los productos existan y devuelve el stock actual por ID.
func resolveProducts(ctx context.Context, products repository.ProductRepository, items []entity.OperationItem) (map[string]int64, error) {
	if len(items) == 0 {
		return map[string]int64{}, nil
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	found, err := products.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	onHand := make(map[string]int64, len(found))
	for _, p := range found {
		onHand[p.ID] = p.Quantity
	}
	for _, id := range ids {
		if _, ok := onHand[id]; !ok {
			return nil, fmt.Errorf("%w: producto %s no existe", domain.ErrInvalidInput, id)
		}
	}
	return onHand, nil
}

// Create valida la solicitud, decide el estado inicial según el tipo y persiste cabecera,
// ítems y referencia en una sola transacción.
func (uc *OperationUseCase) Create(ctx context.Context, in CreateOperationInput) (*entity.Operation, error) {
	h, err := ledger.HandlerFor(in.Type)
	if err != nil {
		return nil, err
	}
	if in.ScheduleDate.IsZero() {
		return nil, fmt.Errorf("%w: scheduleDate es obligatorio", domain.ErrInvalidInput)
	}
	if in.LocationID == "" {
		return nil, fmt.Errorf("%w: locationId es obligatorio", domain.ErrInvalidInput)
	}
	src, dst, err := h.Locations(in.LocationID, in.DestinationLocationID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	op := &entity.Operation{
		ID:                    uuid.New().String(),
		Type:                  h.Type(),
		Contact:               in.Contact,
		ScheduleDate:          in.ScheduleDate,
		SourceLocationID:      src,
		DestinationLocationID: dst,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if op.Items, err = buildItems(h, op.ID, in.Items); err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		loc, err := r.Locations.GetByID(ctx, in.LocationID)
		if err != nil {
			return err
		}
		if loc == nil {
			return fmt.Errorf("%w: ubicación %s no existe", domain.ErrInvalidInput, in.LocationID)
		}
		if dst != "" && dst != in.LocationID {
			other, err := r.Locations.GetByID(ctx, dst)
			if err != nil {
				return err
			}
			if other == nil {
				return fmt.Errorf("%w: ubicación destino %s no existe", domain.ErrInvalidInput, dst)
			}
		}
		onHand, err := resolveProducts(ctx, r.Products, op.Items)
		if err != nil {
			return err
		}
		op.Status = h.InitialStatus(op.Items, onHand)
		if op.Reference, err = nextReference(ctx, r.Sequences, h, loc); err != nil {
			return err
		}
		return r.Operations.Create(ctx, op)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("reference", op.Reference).Str("type", string(op.Type)).
		Str("status", string(op.Status)).Int("items", len(op.Items)).Msg("operación creada")
	return uc.Get(ctx, op.ID)
}

// UpdateDraft reemplaza ítems y/o contacto mientras la operación no esté finalizada.
// Bloquea la cabecera para serializar con una finalización concurrente de la misma operación.
func (uc *OperationUseCase) UpdateDraft(ctx context.Context, id string, in UpdateDraftInput) (*entity.Operation, error) {
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		op, err := r.Operations.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}
		if op.Status.IsFinal() {
			return fmt.Errorf("%w (estado actual %s)", domain.ErrAlreadyFinalized, op.Status)
		}
		if in.Items != nil {
			h, err := ledger.HandlerFor(op.Type)
			if err != nil {
				return err
			}
			items, err := buildItems(h, op.ID, *in.Items)
			if err != nil {
				return err
			}
			if _, err := resolveProducts(ctx, r.Products, items); err != nil {
				return err
			}
			if err := r.Operations.ReplaceItems(ctx, op.ID, items); err != nil {
				return err
			}
		}
		if in.Contact != nil {
			if err := r.Operations.UpdateContact(ctx, op.ID, *in.Contact); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// UpdateStatus aplica una transición. Con destino DONE ejecuta el libro de stock en la misma
// transacción; el cambio de estado siempre es condicional sobre el estado leído.
func (uc *OperationUseCase) UpdateStatus(ctx context.Context, id string, target entity.OperationStatus) (*entity.Operation, error) {
	var ref string
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		op, err := r.Operations.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}
		if err := ledger.CheckTransition(op.Status, target); err != nil {
			return err
		}
		ref = op.Reference
		if target == entity.StatusDone {
			return uc.finalize(ctx, r, op)
		}
		ok, err := r.Operations.CompareAndSetStatus(ctx, op.ID, op.Status, target)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: el estado cambió durante la actualización", domain.ErrConflict)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("reference", ref).Str("status", string(target)).Msg("estado de operación actualizado")
	return uc.Get(ctx, id)
}

// Get devuelve la operación con sus ítems o ErrNotFound.
func (uc *OperationUseCase) Get(ctx context.Context, id string) (*entity.Operation, error) {
	op, err := uc.operations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	return op, nil
}

// List operaciones más recientes primero, con filtros opcionales.
func (uc *OperationUseCase) List(ctx context.Context, filter repository.OperationFilter) ([]*entity.Operation, error) {
	return uc.operations.List(ctx, filter)
}

// ListMoves historial del libro de stock.
func (uc *OperationUseCase) ListMoves(ctx context.Context, filter repository.MoveFilter) ([]repository.MoveView, error) {
	return uc.moves.List(ctx, filter)
}

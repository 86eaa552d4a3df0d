package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// ErrSlipDisabled no hay generador de comprobantes configurado.
var ErrSlipDisabled = errors.New("generación de comprobantes deshabilitada")

// Slip genera el comprobante PDF de la operación.
func (uc *OperationUseCase) Slip(ctx context.Context, id string) ([]byte, *entity.Operation, error) {
	if uc.slips == nil {
		return nil, nil, ErrSlipDisabled
	}
	op, err := uc.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	products, err := uc.products.ListByIDs(ctx, op.ProductIDs())
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	validatedAt, err := uc.validatedAt(ctx, op)
	if err != nil {
		return nil, nil, err
	}

	res := ToOperationResponse(op)
	data := SlipData{
		Reference:    res.Reference,
		Type:         res.Type,
		Status:       res.Status,
		Source:       res.Source,
		Destination:  res.Destination,
		Contact:      res.Contact,
		ScheduleDate: res.ScheduleDate,
		ValidatedAt:  validatedAt,
		GeneratedAt:  uc.now(),
	}
	for _, it := range op.Items {
		line := SlipLine{Name: it.ProductID, Quantity: it.Quantity, Done: it.Done}
		if p, ok := byID[it.ProductID]; ok {
			line.SKU, line.Name, line.UnitPrice = p.SKU, p.Name, p.Price
		}
		data.Lines = append(data.Lines, line)
	}

	pdf, err := uc.slips.RenderOperationSlip(data)
	if err != nil {
		return nil, nil, fmt.Errorf("comprobante %s: %w", op.Reference, err)
	}
	return pdf, op, nil
}

// validatedAt toma la fecha del libro de movimientos: todos los de una operación se escriben en la
// misma transacción de finalización.
func (uc *OperationUseCase) validatedAt(ctx context.Context, op *entity.Operation) (string, error) {
	if op.Status != entity.StatusDone {
		return "", nil
	}
	moves, err := uc.moves.ListByOperation(ctx, op.ID)
	if err != nil {
		return "", err
	}
	if len(moves) == 0 {
		return "", nil
	}
	return moves[0].CreatedAt.UTC().Format("2006-01-02 15:04"), nil
}

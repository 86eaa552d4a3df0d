package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/dto"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	ledger "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/inventory"
)

// parseScheduleDate acepta YYYY-MM-DD o RFC3339.
func parseScheduleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: scheduleDate es obligatorio", domain.ErrInvalidInput)
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: scheduleDate inválido %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func toItemInputs(in []dto.OperationItemRequest) []ItemInput {
	out := make([]ItemInput, 0, len(in))
	for _, it := range in {
		out = append(out, ItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

// CreateFromRequest adapta el request HTTP al caso de uso Create.
func (uc *OperationUseCase) CreateFromRequest(ctx context.Context, in dto.CreateOperationRequest) (dto.OperationResponse, error) {
	typ, err := ledger.ParseType(strings.ToUpper(strings.TrimSpace(in.Type)))
	if err != nil {
		return dto.OperationResponse{}, err
	}
	date, err := parseScheduleDate(in.ScheduleDate)
	if err != nil {
		return dto.OperationResponse{}, err
	}
	op, err := uc.Create(ctx, CreateOperationInput{
		Type:                  typ,
		ScheduleDate:          date,
		Contact:               strings.TrimSpace(in.Contact),
		LocationID:            in.LocationID,
		DestinationLocationID: in.DestinationLocationID,
		Items:                 toItemInputs(in.Items),
	})
	if err != nil {
		return dto.OperationResponse{}, err
	}
	return ToOperationResponse(op), nil
}

// UpdateDraftFromRequest adapta el request HTTP al caso de uso UpdateDraft.
func (uc *OperationUseCase) UpdateDraftFromRequest(ctx context.Context, id string, in dto.UpdateOperationRequest) (dto.OperationResponse, error) {
	input := UpdateDraftInput{Contact: in.Contact}
	if in.Items != nil {
		items := toItemInputs(*in.Items)
		input.Items = &items
	}
	op, err := uc.UpdateDraft(ctx, id, input)
	if err != nil {
		return dto.OperationResponse{}, err
	}
	return ToOperationResponse(op), nil
}

// UpdateStatusFromRequest adapta el request HTTP al caso de uso UpdateStatus.
func (uc *OperationUseCase) UpdateStatusFromRequest(ctx context.Context, id string, in dto.UpdateStatusRequest) (dto.OperationResponse, error) {
	target, err := ledger.ParseStatus(strings.ToUpper(strings.TrimSpace(in.Status)))
	if err != nil {
		return dto.OperationResponse{}, err
	}
	op, err := uc.UpdateStatus(ctx, id, target)
	if err != nil {
		return dto.OperationResponse{}, err
	}
	return ToOperationResponse(op), nil
}

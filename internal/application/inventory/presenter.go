package inventory

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/dto"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

// Etiquetas cuando la operación no tiene ubicación en ese extremo.
const (
	labelVendor     = "Vendor"
	labelCustomer   = "Customer"
	labelStock      = "WH/Stock"
	labelAdjustment = "Inventory Adjustment"
)

// title DRAFT -> Draft. cases.Caser no es seguro entre goroutines: uno por llamada.
func title(s string) string {
	return cases.Title(language.Und).String(strings.ToLower(s))
}

func sourceLabel(t entity.OperationType, code string) string {
	switch {
	case code != "":
		return code
	case t == entity.OperationTypeReceipt:
		return labelVendor
	case t == entity.OperationTypeAdjustment:
		return labelAdjustment
	default:
		return labelStock
	}
}

func destinationLabel(t entity.OperationType, code string) string {
	switch {
	case code != "":
		return code
	case t == entity.OperationTypeDelivery:
		return labelCustomer
	case t == entity.OperationTypeAdjustment:
		return labelAdjustment
	default:
		return labelStock
	}
}

// ToOperationResponse formatea la operación para el cliente.
func ToOperationResponse(op *entity.Operation) dto.OperationResponse {
	items := make([]dto.OperationItemResponse, 0, len(op.Items))
	for _, it := range op.Items {
		items = append(items, dto.OperationItemResponse{ProductID: it.ProductID, Quantity: it.Quantity, Done: it.Done})
	}
	return dto.OperationResponse{
		ID:           op.ID,
		Reference:    op.Reference,
		Type:         title(string(op.Type)),
		Source:       sourceLabel(op.Type, op.SourceCode),
		Destination:  destinationLabel(op.Type, op.DestinationCode),
		Contact:      op.Contact,
		Status:       title(string(op.Status)),
		ScheduleDate: op.ScheduleDate.UTC().Format("2006-01-02"),
		Items:        items,
	}
}

// ToOperationResponses formatea un listado.
func ToOperationResponses(ops []*entity.Operation) []dto.OperationResponse {
	out := make([]dto.OperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, ToOperationResponse(op))
	}
	return out
}

// ToMoveResponse formatea un movimiento del historial.
func ToMoveResponse(v repository.MoveView) dto.MoveResponse {
	from := v.SourceCode
	if from == "" {
		switch {
		case v.OperationType == entity.OperationTypeAdjustment:
			from = labelAdjustment
		case v.Direction == entity.DirectionIn:
			from = labelVendor
		default:
			from = labelStock
		}
	}
	to := v.DestinationCode
	if to == "" {
		switch {
		case v.OperationType == entity.OperationTypeAdjustment:
			to = labelAdjustment
		case v.Direction == entity.DirectionOut:
			to = labelCustomer
		default:
			to = labelStock
		}
	}
	return dto.MoveResponse{
		ID:        v.ID,
		Reference: v.Reference,
		Date:      v.CreatedAt.UTC().Format(time.RFC3339),
		Product:   fmt.Sprintf("[%s] %s", v.ProductSKU, v.ProductName),
		From:      from,
		To:        to,
		Quantity:  v.Quantity,
		Status:    title(v.Status),
		Contact:   v.Contact,
		Type:      strings.ToLower(string(v.Direction)),
	}
}

// ToMoveResponses formatea un listado de movimientos.
func ToMoveResponses(views []repository.MoveView) []dto.MoveResponse {
	out := make([]dto.MoveResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToMoveResponse(v))
	}
	return out
}

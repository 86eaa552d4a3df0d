package inventory

import (
	"fmt"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// Effect resultado de aplicar un ítem sobre el stock de su producto.
type Effect struct {
	NewQuantity  int64                // cantidad resultante del producto
	Applied      int64                // lo efectivamente cumplido (item.Done)
	Direction    entity.MoveDirection // sentido del movimiento a registrar
	MoveQuantity int64
}

// Handler comportamiento por tipo de operación (unión cerrada: un handler por tipo).
type Handler interface {
	Type() entity.OperationType
	// DirectionCode segmento central de la referencia (IN, OUT, INT, ADJ).
	DirectionCode() string
	// Locations reparte la ubicación de la solicitud en origen/destino.
	Locations(locationID, destinationID string) (source, destination string, err error)
	ValidateQuantity(q int64) error
	InitialStatus(items []entity.OperationItem, onHand map[string]int64) entity.OperationStatus
	// NeedsStock indica si el estado inicial depende del stock disponible.
	NeedsStock() bool
	Apply(current int64, item entity.OperationItem) Effect
	// MoveLocations ubicaciones del movimiento según el efecto calculado.
	MoveLocations(op *entity.Operation, eff Effect) (source, destination string)
}

var handlers = map[entity.OperationType]Handler{
	entity.OperationTypeReceipt:    receiptHandler{},
	entity.OperationTypeDelivery:   deliveryHandler{},
	entity.OperationTypeInternal:   internalHandler{},
	entity.OperationTypeAdjustment: adjustmentHandler{},
}

// HandlerFor devuelve el handler del tipo o ErrInvalidInput si no existe.
func HandlerFor(t entity.OperationType) (Handler, error) {
	h, ok := handlers[t]
	if !ok {
		return nil, fmt.Errorf("%w: tipo de operación desconocido %q", domain.ErrInvalidInput, t)
	}
	return h, nil
}

func positive(q int64) error {
	if q <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
	}
	return nil
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// ─── Recepción ───────────────────────────────────────────────────────────────

type receiptHandler struct{}

func (receiptHandler) Type() entity.OperationType { return entity.OperationTypeReceipt }
func (receiptHandler) DirectionCode() string      { return "IN" }
func (receiptHandler) NeedsStock() bool           { return false }

func (receiptHandler) Locations(locationID, _ string) (string, string, error) {
	return "", locationID, nil
}

func (receiptHandler) ValidateQuantity(q int64) error { return positive(q) }

func (receiptHandler) InitialStatus([]entity.OperationItem, map[string]int64) entity.OperationStatus {
	return entity.StatusDraft
}

func (receiptHandler) Apply(current int64, item entity.OperationItem) Effect {
	return Effect{
		NewQuantity:  current + item.Quantity,
		Applied:      item.Quantity,
		Direction:    entity.DirectionIn,
		MoveQuantity: item.Quantity,
	}
}

func (receiptHandler) MoveLocations(op *entity.Operation, _ Effect) (string, string) {
	return op.SourceLocationID, op.DestinationLocationID
}

// ─── Entrega ─────────────────────────────────────────────────────────────────

type deliveryHandler struct{}

func (deliveryHandler) Type() entity.OperationType { return entity.OperationTypeDelivery }
func (deliveryHandler) DirectionCode() string      { return "OUT" }
func (deliveryHandler) NeedsStock() bool           { return true }

func (deliveryHandler) Locations(locationID, _ string) (string, string, error) {
	return locationID, "", nil
}

func (deliveryHandler) ValidateQuantity(q int64) error { return positive(q) }

func (deliveryHandler) InitialStatus(items []entity.OperationItem, onHand map[string]int64) entity.OperationStatus {
	return Availability(items, onHand)
}

// Apply descuenta como máximo lo disponible; el movimiento conserva la cantidad solicitada.
func (deliveryHandler) Apply(current int64, item entity.OperationItem) Effect {
	dec := minInt64(current, item.Quantity)
	return Effect{
		NewQuantity:  current - dec,
		Applied:      dec,
		Direction:    entity.DirectionOut,
		MoveQuantity: item.Quantity,
	}
}

func (deliveryHandler) MoveLocations(op *entity.Operation, _ Effect) (string, string) {
	return op.SourceLocationID, op.DestinationLocationID
}

// ─── Traslado interno ────────────────────────────────────────────────────────

type internalHandler struct{}

func (internalHandler) Type() entity.OperationType { return entity.OperationTypeInternal }
func (internalHandler) DirectionCode() string      { return "INT" }
func (internalHandler) NeedsStock() bool           { return true }

func (internalHandler) Locations(locationID, destinationID string) (string, string, error) {
	if destinationID == "" {
		return "", "", fmt.Errorf("%w: el traslado interno requiere ubicación destino", domain.ErrInvalidInput)
	}
	if destinationID == locationID {
		return "", "", fmt.Errorf("%w: origen y destino deben ser distintos", domain.ErrInvalidInput)
	}
	return locationID, destinationID, nil
}

func (internalHandler) ValidateQuantity(q int64) error { return positive(q) }

func (internalHandler) InitialStatus(items []entity.OperationItem, onHand map[string]int64) entity.OperationStatus {
	return Availability(items, onHand)
}

// Apply no altera el total: el stock se controla a nivel de producto, no de ubicación.
func (internalHandler) Apply(current int64, item entity.OperationItem) Effect {
	return Effect{
		NewQuantity:  current,
		Applied:      minInt64(current, item.Quantity),
		Direction:    entity.DirectionInternal,
		MoveQuantity: item.Quantity,
	}
}

func (internalHandler) MoveLocations(op *entity.Operation, _ Effect) (string, string) {
	return op.SourceLocationID, op.DestinationLocationID
}

// ─── Ajuste por conteo ───────────────────────────────────────────────────────

type adjustmentHandler struct{}

func (adjustmentHandler) Type() entity.OperationType { return entity.OperationTypeAdjustment }
func (adjustmentHandler) DirectionCode() string      { return "ADJ" }
func (adjustmentHandler) NeedsStock() bool           { return false }

// Locations la ubicación contada se guarda como destino.
func (adjustmentHandler) Locations(locationID, _ string) (string, string, error) {
	return "", locationID, nil
}

// ValidateQuantity un conteo de cero es válido.
func (adjustmentHandler) ValidateQuantity(q int64) error {
	if q < 0 {
		return fmt.Errorf("%w: la cantidad contada no puede ser negativa", domain.ErrInvalidInput)
	}
	return nil
}

func (adjustmentHandler) InitialStatus([]entity.OperationItem, map[string]int64) entity.OperationStatus {
	return entity.StatusDraft
}

// Apply fija la cantidad al conteo; el movimiento registra la diferencia absoluta.
func (adjustmentHandler) Apply(current int64, item entity.OperationItem) Effect {
	delta := item.Quantity - current
	eff := Effect{NewQuantity: item.Quantity, Applied: item.Quantity, Direction: entity.DirectionIn, MoveQuantity: delta}
	if delta < 0 {
		eff.Direction = entity.DirectionOut
		eff.MoveQuantity = -delta
	}
	return eff
}

// MoveLocations un ajuste negativo sale de la ubicación contada.
func (adjustmentHandler) MoveLocations(op *entity.Operation, eff Effect) (string, string) {
	if eff.Direction == entity.DirectionOut {
		return op.DestinationLocationID, ""
	}
	return "", op.DestinationLocationID
}

package entity

import "time"

// OperationType tipo de operación de bodega.
type OperationType string

const (
	OperationTypeReceipt    OperationType = "RECEIPT"    // entrada de proveedor
	OperationTypeDelivery   OperationType = "DELIVERY"   // salida a cliente
	OperationTypeInternal   OperationType = "INTERNAL"   // traslado interno
	OperationTypeAdjustment OperationType = "ADJUSTMENT" // ajuste por conteo
)

// OperationTypes lista cerrada de tipos soportados.
var OperationTypes = []OperationType{
	OperationTypeReceipt, OperationTypeDelivery, OperationTypeInternal, OperationTypeAdjustment,
}

// OperationStatus estado del ciclo de vida de una operación.
type OperationStatus string

const (
	StatusDraft     OperationStatus = "DRAFT"
	StatusWaiting   OperationStatus = "WAITING"
	StatusReady     OperationStatus = "READY"
	StatusDone      OperationStatus = "DONE"
	StatusCancelled OperationStatus = "CANCELLED"
)

// OperationStatuses lista cerrada de estados.
var OperationStatuses = []OperationStatus{
	StatusDraft, StatusWaiting, StatusReady, StatusDone, StatusCancelled,
}

// IsFinal DONE y CANCELLED son terminales: la operación y sus ítems quedan inmutables.
func (s OperationStatus) IsFinal() bool {
	return s == StatusDone || s == StatusCancelled
}

// Operation cabecera de una operación con sus ítems ordenados.
type Operation struct {
	ID                    string
	Reference             string // ej. WH/IN/0001
	Type                  OperationType
	Status                OperationStatus
	Contact               string
	ScheduleDate          time.Time
	SourceLocationID      string // vacío si no aplica
	DestinationLocationID string // vacío si no aplica
	SourceCode            string // short code de origen (join, solo lectura)
	DestinationCode       string // short code de destino (join, solo lectura)
	Items                 []OperationItem
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ProductIDs devuelve los productos referenciados por los ítems, en orden de ítem.
func (o *Operation) ProductIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

// OperationItem línea de una operación. Quantity es lo solicitado; Done lo efectivamente aplicado.
type OperationItem struct {
	ID          string
	OperationID string
	Position    int
	ProductID   string
	Quantity    int64
	Done        int64
}

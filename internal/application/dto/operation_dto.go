package dto

// OperationItemRequest línea de una operación en create/update.
type OperationItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"gte=0"`
}

// CreateOperationRequest body para POST /api/operations.
// LocationID es destino en recepciones/ajustes y origen en entregas/traslados.
type CreateOperationRequest struct {
	Type                  string                 `json:"type" validate:"required,oneof=RECEIPT DELIVERY INTERNAL ADJUSTMENT"`
	ScheduleDate          string                 `json:"scheduleDate" validate:"required"`
	Contact               string                 `json:"contact,omitempty"`
	LocationID            string                 `json:"locationId" validate:"required"`
	DestinationLocationID string                 `json:"destinationLocationId,omitempty"`
	Items                 []OperationItemRequest `json:"items" validate:"dive"`
}

// UpdateOperationRequest body para PATCH /api/operations/:id (solo borradores no finalizados).
// Items nil = no tocar ítems; Items vacío = dejar la operación sin ítems.
type UpdateOperationRequest struct {
	Contact *string                 `json:"contact,omitempty"`
	Items   *[]OperationItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

// UpdateStatusRequest body para PATCH /api/operations/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT WAITING READY DONE CANCELLED"`
}

// OperationItemResponse línea en la respuesta.
type OperationItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Done      int64  `json:"done"`
}

// OperationResponse operación formateada para el cliente.
type OperationResponse struct {
	ID           string                  `json:"id"`
	Reference    string                  `json:"reference"`
	Type         string                  `json:"type"`   // Receipt, Delivery, Internal, Adjustment
	Source       string                  `json:"source"` // short code o Vendor / WH/Stock
	Destination  string                  `json:"destination"`
	Contact      string                  `json:"contact"`
	Status       string                  `json:"status"`       // Draft, Waiting, Ready, Done, Cancelled
	ScheduleDate string                  `json:"scheduleDate"` // YYYY-MM-DD
	Items        []OperationItemResponse `json:"items"`
}

// RefreshReadinessResponse resultado de POST /api/operations/refresh-readiness.
type RefreshReadinessResponse struct {
	Promoted int `json:"promoted"`
}

// MoveResponse movimiento del historial.
type MoveResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Date      string `json:"date"`    // RFC3339
	Product   string `json:"product"` // [SKU] Nombre
	From      string `json:"from"`
	To        string `json:"to"`
	Quantity  int64  `json:"quantity"`
	Status    string `json:"status"`
	Contact   string `json:"contact"`
	Type      string `json:"type"` // in, out, internal
}

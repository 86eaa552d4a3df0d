package dto

// ReceiptMetricsDTO conteos de recepciones.
type ReceiptMetricsDTO struct {
	Pending  int64 `json:"pending"`  // DRAFT
	Received int64 `json:"received"` // DONE
}

// DeliveryMetricsDTO conteos de entregas.
type DeliveryMetricsDTO struct {
	Waiting   int64 `json:"waiting"`
	Ready     int64 `json:"ready"`
	Delivered int64 `json:"delivered"` // DONE
}

// FlowPointDTO movimientos de un día (UTC).
type FlowPointDTO struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Receipts   int64  `json:"receipts"`
	Deliveries int64  `json:"deliveries"`
}

// OperationMetricsDTO respuesta de GET /api/operations/metrics.
type OperationMetricsDTO struct {
	Receipts   ReceiptMetricsDTO  `json:"receipts"`
	Deliveries DeliveryMetricsDTO `json:"deliveries"`
	Flow       []FlowPointDTO     `json:"flow"` // últimos 7 días, hoy incluido
}

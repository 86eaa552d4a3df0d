package dto

// AlertResponse alerta de stock bajo formateada.
type AlertResponse struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"productId"`
	Product    string  `json:"product"`
	Quantity   int64   `json:"quantity"`
	Threshold  int64   `json:"threshold"`
	Resolved   bool    `json:"resolved"`
	CreatedAt  string  `json:"createdAt"`
	ResolvedAt *string `json:"resolvedAt"`
}

// SweepResponse resultado de un barrido manual.
type SweepResponse struct {
	Checked int  `json:"checked"`
	Created int  `json:"created"`
	Skipped bool `json:"skipped"` // otra réplica tenía el candado
}

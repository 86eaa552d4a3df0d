package alert

import (
	"context"
	"time"
)

// Locker candado distribuido para que una sola réplica ejecute el barrido.
type Locker interface {
	// TryLock no bloquea: acquired=false si otro proceso ya lo tiene.
	TryLock(ctx context.Context, key string) (release func(context.Context) error, acquired bool, err error)
}

// AlertCreatedEvent evento publicado cuando el barrido abre una alerta.
type AlertCreatedEvent struct {
	AlertID   string    `json:"alert_id"`
	ProductID string    `json:"product_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	Threshold int64     `json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
}

// Publisher notifica alertas nuevas a otros sistemas.
type Publisher interface {
	PublishAlertCreated(ctx context.Context, ev AlertCreatedEvent) error
}

// Package alert mantiene las alertas de stock bajo: barrido periódico, listado y resolución manual.
package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/dto"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
)

// SweepLockKey clave del candado single-flight (en proceso y en Redis).
const SweepLockKey = "stock-alert-sweep"

// SweepResult resumen de un barrido.
type SweepResult struct {
	Checked int  // productos en o bajo el umbral
	Created int  // alertas nuevas
	Skipped bool // otra réplica tenía el candado
}

// AlertUseCase casos de uso de alertas. El barrido es single-flight: llamadas concurrentes
// (tick del scheduler y disparo manual) comparten una sola ejecución.
type AlertUseCase struct {
	alerts    repository.AlertRepository
	products  repository.ProductRepository
	locker    Locker
	publisher Publisher
	group     singleflight.Group
	log       *logger.Logger
	now       func() time.Time
}

// NewAlertUseCase construye el caso de uso sin candado distribuido ni publicador.
func NewAlertUseCase(alerts repository.AlertRepository, products repository.ProductRepository, log *logger.Logger) *AlertUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AlertUseCase{
		alerts:   alerts,
		products: products,
		log:      log.Component("alerts"),
		now:      time.Now,
	}
}

// WithLocker agrega el candado distribuido.
func (uc *AlertUseCase) WithLocker(l Locker) *AlertUseCase {
	uc.locker = l
	return uc
}

// WithPublisher agrega el publicador de eventos.
func (uc *AlertUseCase) WithPublisher(p Publisher) *AlertUseCase {
	uc.publisher = p
	return uc
}

// WithClock reemplaza el reloj (tests).
func (uc *AlertUseCase) WithClock(now func() time.Time) *AlertUseCase {
	uc.now = now
	return uc
}

// Sweep abre una alerta por cada producto en o bajo su umbral que no tenga otra sin resolver.
func (uc *AlertUseCase) Sweep(ctx context.Context) (SweepResult, error) {
	v, err, shared := uc.group.Do(SweepLockKey, func() (interface{}, error) {
		return uc.sweep(ctx)
	})
	if shared {
		uc.log.Debug().Msg("barrido compartido con una ejecución en curso")
	}
	if err != nil {
		return SweepResult{}, err
	}
	return v.(SweepResult), nil
}

func (uc *AlertUseCase) sweep(ctx context.Context) (SweepResult, error) {
	if uc.locker != nil {
		release, acquired, err := uc.locker.TryLock(ctx, SweepLockKey)
		if err != nil {
			return SweepResult{}, fmt.Errorf("candado de barrido: %w", err)
		}
		if !acquired {
			uc.log.Debug().Msg("barrido omitido: otra réplica tiene el candado")
			return SweepResult{Skipped: true}, nil
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				uc.log.Warn().Err(err).Msg("no se pudo liberar el candado de barrido")
			}
		}()
	}

	low, err := uc.products.ListLowStock(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("productos bajo umbral: %w", err)
	}

	res := SweepResult{Checked: len(low)}
	now := uc.now()
	for _, p := range low {
		a := &entity.Alert{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Quantity:  p.Quantity,
			Threshold: p.MinThreshold,
			CreatedAt: now,
		}
		created, err := uc.alerts.CreateIfNoneOpen(ctx, a)
		if err != nil {
			return res, fmt.Errorf("alerta para %s: %w", p.SKU, err)
		}
		if !created {
			continue
		}
		res.Created++
		uc.log.Info().Str("sku", p.SKU).Int64("quantity", p.Quantity).Int64("threshold", p.MinThreshold).
			Msg("alerta de stock bajo creada")
		uc.publish(ctx, a, p)
	}
	return res, nil
}

// publish un fallo del broker no revierte la alerta; queda registrado en el log.
func (uc *AlertUseCase) publish(ctx context.Context, a *entity.Alert, p *entity.Product) {
	if uc.publisher == nil {
		return
	}
	ev := AlertCreatedEvent{
		AlertID:   a.ID,
		ProductID: p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Quantity:  a.Quantity,
		Threshold: a.Threshold,
		CreatedAt: a.CreatedAt,
	}
	if err := uc.publisher.PublishAlertCreated(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Str("alert_id", a.ID).Msg("no se pudo publicar la alerta")
	}
}

// List alertas más recientes primero; unresolvedOnly filtra las abiertas.
func (uc *AlertUseCase) List(ctx context.Context, unresolvedOnly bool) ([]dto.AlertResponse, error) {
	views, err := uc.alerts.List(ctx, unresolvedOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToAlertResponse(v))
	}
	return out, nil
}

// Resolve reconocimiento manual: no vuelve a revisar el stock.
func (uc *AlertUseCase) Resolve(ctx context.Context, id string) (dto.AlertResponse, error) {
	v, err := uc.alerts.Resolve(ctx, id, uc.now())
	if err != nil {
		return dto.AlertResponse{}, err
	}
	if v == nil {
		return dto.AlertResponse{}, domain.ErrNotFound
	}
	return ToAlertResponse(*v), nil
}

// ToAlertResponse formatea la alerta para el cliente. Un producto ya eliminado se muestra como "Unknown".
func ToAlertResponse(v repository.AlertView) dto.AlertResponse {
	product := "Unknown"
	if v.ProductSKU != "" || v.ProductName != "" {
		product = fmt.Sprintf("[%s] %s", v.ProductSKU, v.ProductName)
	}
	res := dto.AlertResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Product:   product,
		Quantity:  v.Quantity,
		Threshold: v.Threshold,
		Resolved:  v.Resolved,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
	if v.ResolvedAt != nil {
		at := v.ResolvedAt.UTC().Format(time.RFC3339)
		res.ResolvedAt = &at
	}
	return res
}

// Package analytics contiene los casos de uso de solo lectura para el tablero de operaciones.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/dto"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

const flowDays = 7 // días del flujo, hoy incluido

// MetricsUseCase genera los conteos de recepciones/entregas y el flujo diario de movimientos.
//
// Fuente de datos: MetricsRepository (consultas read-only).
type MetricsUseCase struct {
	repo repository.MetricsRepository
	now  func() time.Time
}

// NewMetricsUseCase construye el caso de uso.
func NewMetricsUseCase(repo repository.MetricsRepository) *MetricsUseCase {
	return &MetricsUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *MetricsUseCase) WithClock(now func() time.Time) *MetricsUseCase {
	uc.now = now
	return uc
}

// GetMetrics construye el OperationMetricsDTO.
//
// Dos consultas en paralelo:
//  1. CountOperations          → receipts / deliveries
//  2. ListMoveFlowSince(hoy-6) → flow por día (UTC)
func (uc *MetricsUseCase) GetMetrics(ctx context.Context) (*dto.OperationMetricsDTO, error) {
	// ── Rango: hoy-6 00:00 UTC hasta ahora ─────────────────────────────────────
	now := uc.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := today.AddDate(0, 0, -(flowDays - 1))

	var (
		counts []repository.OperationCount
		flows  []repository.MoveFlow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = uc.repo.CountOperations(gctx)
		if err != nil {
			return fmt.Errorf("conteo de operaciones: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		flows, err = uc.repo.ListMoveFlowSince(gctx, since)
		if err != nil {
			return fmt.Errorf("flujo de movimientos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.OperationMetricsDTO{Flow: make([]dto.FlowPointDTO, flowDays)}
	for _, c := range counts {
		switch c.Type {
		case entity.OperationTypeReceipt:
			switch c.Status {
			case entity.StatusDraft:
				out.Receipts.Pending += c.Count
			case entity.StatusDone:
				out.Receipts.Received += c.Count
			}
		case entity.OperationTypeDelivery:
			switch c.Status {
			case entity.StatusWaiting:
				out.Deliveries.Waiting += c.Count
			case entity.StatusReady:
				out.Deliveries.Ready += c.Count
			case entity.StatusDone:
				out.Deliveries.Delivered += c.Count
			}
		}
	}

	// ── Flujo: un punto por día, en orden cronológico ─────────────────────────
	index := make(map[string]int, flowDays)
	for i := 0; i < flowDays; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		out.Flow[i] = dto.FlowPointDTO{Date: day}
		index[day] = i
	}
	for _, f := range flows {
		i, ok := index[f.CreatedAt.UTC().Format("2006-01-02")]
		if !ok {
			continue
		}
		switch f.Direction {
		case entity.DirectionIn:
			out.Flow[i].Receipts++
		case entity.DirectionOut:
			out.Flow[i].Deliveries++
		}
	}
	return out, nil
}

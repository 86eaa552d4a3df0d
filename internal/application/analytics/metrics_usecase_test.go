package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/analytics"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/dto"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

type fakeMetricsRepo struct {
	counts   []repository.OperationCount
	flows    []repository.MoveFlow
	since    time.Time
	countErr error
}

func (f *fakeMetricsRepo) CountOperations(context.Context) ([]repository.OperationCount, error) {
	return f.counts, f.countErr
}

func (f *fakeMetricsRepo) ListMoveFlowSince(_ context.Context, since time.Time) ([]repository.MoveFlow, error) {
	f.since = since
	var out []repository.MoveFlow
	for _, m := range f.flows {
		if !m.CreatedAt.Before(since) {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestGetMetrics_ConteosYFlujo(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	repo := &fakeMetricsRepo{
		counts: []repository.OperationCount{
			{Type: entity.OperationTypeReceipt, Status: entity.StatusDraft, Count: 3},
			{Type: entity.OperationTypeReceipt, Status: entity.StatusDone, Count: 7},
			{Type: entity.OperationTypeReceipt, Status: entity.StatusCancelled, Count: 9},
			{Type: entity.OperationTypeDelivery, Status: entity.StatusWaiting, Count: 2},
			{Type: entity.OperationTypeDelivery, Status: entity.StatusReady, Count: 4},
			{Type: entity.OperationTypeDelivery, Status: entity.StatusDone, Count: 5},
			{Type: entity.OperationTypeInternal, Status: entity.StatusDone, Count: 8},
		},
		flows: []repository.MoveFlow{
			{Direction: entity.DirectionIn, CreatedAt: now},
			{Direction: entity.DirectionIn, CreatedAt: now.Add(-time.Hour)},
			{Direction: entity.DirectionOut, CreatedAt: now.AddDate(0, 0, -6)},
			{Direction: entity.DirectionInternal, CreatedAt: now},
			{Direction: entity.DirectionOut, CreatedAt: now.AddDate(0, 0, -7)}, // fuera de rango
		},
	}
	uc := analytics.NewMetricsUseCase(repo).WithClock(func() time.Time { return now })

	got, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.ReceiptMetricsDTO{Pending: 3, Received: 7}, got.Receipts)
	assert.Equal(t, dto.DeliveryMetricsDTO{Waiting: 2, Ready: 4, Delivered: 5}, got.Deliveries)
	assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), repo.since)

	require.Len(t, got.Flow, 7)
	assert.Equal(t, dto.FlowPointDTO{Date: "2024-06-04", Receipts: 0, Deliveries: 1}, got.Flow[0])
	assert.Equal(t, dto.FlowPointDTO{Date: "2024-06-10", Receipts: 2, Deliveries: 0}, got.Flow[6])
	for _, p := range got.Flow[1:6] {
		assert.Zero(t, p.Receipts+p.Deliveries, p.Date)
	}
}

func TestGetMetrics_PropagaError(t *testing.T) {
	repo := &fakeMetricsRepo{countErr: errors.New("timeout")}
	_, err := analytics.NewMetricsUseCase(repo).GetMetrics(context.Background())
	assert.Error(t, err)
}

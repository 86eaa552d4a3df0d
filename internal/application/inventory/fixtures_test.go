package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/memory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures: una bodega WH con dos ubicaciones y productos con stock conocido.
// ──────────────────────────────────────────────────────────────────────────────

const (
	locStock = "loc-stock"
	locShelf = "loc-shelf"
	locOrph  = "loc-orphan" // bodega inexistente

	prodDesk  = "p-desk"  // 5 unidades
	prodChair = "p-chair" // 10 unidades
)

var scheduleDate = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

type fixture struct {
	store *memory.Store
	uc    *inventory.OperationUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	s.AddWarehouse(entity.Warehouse{ID: "wh-1", Name: "Main", ShortCode: "WH"})
	s.AddWarehouse(entity.Warehouse{ID: "wh-2", Name: "North", ShortCode: "NW"})
	s.AddLocation(entity.Location{ID: locStock, ShortCode: "WH/Stock", WarehouseID: "wh-1"})
	s.AddLocation(entity.Location{ID: locShelf, ShortCode: "NW/Shelf", WarehouseID: "wh-2"})
	s.AddLocation(entity.Location{ID: locOrph, ShortCode: "X/Lost", WarehouseID: "wh-missing"})
	s.AddProduct(entity.Product{ID: prodDesk, SKU: "DESK", Name: "Desk", Quantity: 5, MinThreshold: 10})
	s.AddProduct(entity.Product{ID: prodChair, SKU: "CHAIR", Name: "Chair", Quantity: 10, MinThreshold: 2})

	uc := inventory.NewOperationUseCase(s, s.Operations(), s.Moves(), s.Products(), nil, logger.Nop())
	return &fixture{store: s, uc: uc}
}

func (f *fixture) create(t *testing.T, typ entity.OperationType, loc string, items ...inventory.ItemInput) *entity.Operation {
	t.Helper()
	op, err := f.uc.Create(context.Background(), inventory.CreateOperationInput{
		Type:         typ,
		ScheduleDate: scheduleDate,
		Contact:      "Azure Interior",
		LocationID:   loc,
		Items:        items,
	})
	require.NoError(t, err)
	return op
}

func (f *fixture) quantity(t *testing.T, id string) int64 {
	t.Helper()
	p, err := f.store.Products().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

func (f *fixture) moves(t *testing.T, opID string) []*entity.Move {
	t.Helper()
	ms, err := f.store.Moves().ListByOperation(context.Background(), opID)
	require.NoError(t, err)
	return ms
}

func item(productID string, qty int64) inventory.ItemInput {
	return inventory.ItemInput{ProductID: productID, Quantity: qty}
}

package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/dto"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Creación y referencias
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ReferenciasPorBodegaYDireccion(t *testing.T) {
	f := newFixture(t)

	r1 := f.create(t, entity.OperationTypeReceipt, locStock, item(prodDesk, 1))
	r2 := f.create(t, entity.OperationTypeReceipt, locStock, item(prodDesk, 1))
	d1 := f.create(t, entity.OperationTypeDelivery, locStock, item(prodDesk, 1))
	n1 := f.create(t, entity.OperationTypeReceipt, locShelf, item(prodDesk, 1))
	x1 := f.create(t, entity.OperationTypeAdjustment, locOrph, item(prodDesk, 3))

	assert.Equal(t, "WH/IN/0001", r1.Reference)
	assert.Equal(t, "WH/IN/0002", r2.Reference)
	assert.Equal(t, "WH/OUT/0001", d1.Reference)
	assert.Equal(t, "NW/IN/0001", n1.Reference)
	assert.Equal(t, "WH/ADJ/0001", x1.Reference, "sin bodega resoluble se usa WH")
}

func TestCreate_ReceiptQuedaEnBorrador(t *testing.T) {
	f := newFixture(t)
	op := f.create(t, entity.OperationTypeReceipt, locStock, item(prodDesk, 10))

	assert.Equal(t, entity.StatusDraft, op.Status)
	assert.Empty(t, op.SourceLocationID)
	assert.Equal(t, locStock, op.DestinationLocationID)
	assert.Equal(t, "WH/Stock", op.DestinationCode)
	require.Len(t, op.Items, 1)
	assert.Equal(t, int64(10), op.Items[0].Quantity)
	assert.Zero(t, op.Items[0].Done)
}

func TestCreate_DeliveryEstadoInicialSegunStock(t *testing.T) {
	f := newFixture(t)

	waiting := f.create(t, entity.OperationTypeDelivery, locStock, item(prodDesk, 20))
	assert.Equal(t, entity.StatusWaiting, waiting.Status, "20 solicitadas contra 5 disponibles")
	assert.Equal(t, locStock, waiting.SourceLocationID)

	ready := f.create(t, entity.OperationTypeDelivery, locStock, item(prodDesk, 5), item(prodChair, 3))
	assert.Equal(t, entity.StatusReady, ready.Status)

	empty := f.create(t, entity.OperationTypeDelivery, locStock)
	assert.Equal(t, entity.StatusDraft, empty.Status)
}

func TestCreate_InternalYAdjustment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	internal, err := f.uc.Create(ctx, inventory.CreateOperationInput{
		Type: entity.OperationTypeInternal, ScheduleDate: scheduleDate,
		LocationID: locStock, DestinationLocationID: locShelf,
		Items: []inventory.ItemInput{item(prodChair, 4)},
	})
	require.NoError(t, err)
	assert.Equal(t, "WH/INT/0001", internal.Reference)
	assert.Equal(t, entity.StatusReady, internal.Status)
	assert.Equal(t, "WH/Stock", internal.SourceCode)
	assert.Equal(t, "NW/Shelf", internal.DestinationCode)

	adj := f.create(t, entity.OperationTypeAdjustment, locStock, item(prodDesk, 0))
	assert.Equal(t, entity.StatusDraft, adj.Status)
	assert.Equal(t, locStock, adj.DestinationLocationID)
}

func TestCreate_Validaciones(t *testing.T) {
	tests := []struct {
		name string
		in   inventory.CreateOperationInput
	}{
		{"tipo desconocido", inventory.CreateOperationInput{Type: "TRANSFER", ScheduleDate: scheduleDate, LocationID: locStock}},
		{"sin fecha", inventory.CreateOperationInput{Type: entity.OperationTypeReceipt, LocationID: locStock}},
		{"sin ubicación", inventory.CreateOperationInput{Type: entity.OperationTypeReceipt, ScheduleDate: scheduleDate}},
		{"ubicación inexistente", inventory.CreateOperationInput{Type: entity.OperationTypeReceipt, ScheduleDate: scheduleDate, LocationID: "nope"}},
		{"producto inexistente", inventory.CreateOperationInput{
			Type: entity.OperationTypeReceipt, ScheduleDate: scheduleDate, LocationID: locStock,
			Items: []inventory.ItemInput{item("nope", 1)},
		}},
		{"producto repetido", inventory.CreateOperationInput{
			Type: entity.OperationTypeReceipt, ScheduleDate: scheduleDate, LocationID: locStock,
			Items: []inventory.ItemInput{item(prodDesk, 1), item(prodDesk, 2)},
		}},
		{"cantidad cero", inventory.CreateOperationInput{
			Type: entity.OperationTypeDelivery, ScheduleDate: scheduleDate, LocationID: locStock,
			Items: []inventory.ItemInput{item(prodDesk, 0)},
		}},
		{"traslado sin destino", inventory.CreateOperationInput{
			Type: entity.OperationTypeInternal, ScheduleDate: scheduleDate, LocationID: locStock,
		}},
		{"traslado destino inexistente", inventory.CreateOperationInput{
			Type: entity.OperationTypeInternal, ScheduleDate: scheduleDate, LocationID: locStock, DestinationLocationID: "nope",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.uc.Create(context.Background(), tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			ops, err := f.uc.List(context.Background(), repository.OperationFilter{})
			require.NoError(t, err)
			assert.Empty(t, ops, "nada se persiste ante un error de validación")

			next := f.create(t, entity.OperationTypeReceipt, locStock, item(prodDesk, 1))
			assert.Equal(t, "WH/IN/0001", next.Reference, "el contador no avanza")
		})
	}
}

func TestList_Filtros(t *testing.T) {
	f := newFixture(t)
	f.create(t, entity.OperationTypeReceipt, locStock, item(prodDesk, 1))
	f.create(t, entity.OperationTypeDelivery, locStock, item(prodDesk, 50))
	last := f.create(t, entity.OperationTypeDelivery, locStock, item(prodDesk, 1))

	all, err := f.uc.List(context.Background(), repository.OperationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, last.ID, all[0].ID, "más recientes primero")

	deliveries, err := f.uc.List(context.Background(), repository.OperationFilter{Type: entity.OperationTypeDelivery})
	require.NoError(t, err)
	assert.Len(t, deliveries, 2)

	waiting, err := f.uc.List(context.Background(), repository.OperationFilter{
		Type: entity.OperationTypeDelivery, Status: entity.StatusWaiting,
	})
	require.NoError(t, err)
	assert.Len(t, waiting, 1)
}

func TestGet_NoExiste(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición de borradores
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDraft_ReemplazaItemsYContacto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	op := f.create(t, entity.OperationTypeReceipt, locStock, item(prodDesk, 1), item(prodChair, 2))

	items := []inventory.ItemInput{item(prodChair, 7)}
	contact := "Deco Addict"
	updated, err := f.uc.UpdateDraft(ctx, op.ID, inventory.UpdateDraftInput{Contact: &contact, Items: &items})
	require.NoError(t, err)
	assert.Equal(t, "Deco Addict", updated.Contact)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, prodChair, updated.Items[0].ProductID)
	assert.Equal(t, int64(7), updated.Items[0].Quantity)

	other := "Gemini Furniture"
	updated, err = f.uc.UpdateDraft(ctx, op.ID, inventory.UpdateDraftInput{Contact: &other})
	require.NoError(t, err)
	assert.Equal(t, "Gemini Furniture", updated.Contact)
	assert.Len(t, updated.Items, 1, "solo contacto no toca los ítems")
}

func TestUpdateDraft_ProductoInexistenteNoModifica(t *testing.T) {
	f := newFixture(t)
	op := f.create(t, entity.OperationTypeReceipt, locStock, item(prodDesk, 1))

	items := []inventory.ItemInput{item("nope", 1)}
	_, err := f.uc.UpdateDraft(context.Background(), op.ID, inventory.UpdateDraftInput{Items: &items})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.uc.Get(context.Background(), op.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, prodDesk, got.Items[0].ProductID)
}

func TestUpdateDraft_FinalizadaEsConflicto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	op := f.create(t, entity.OperationTypeReceipt, locStock, item(prodDesk, 1))
	_, err := f.uc.UpdateStatus(ctx, op.ID, entity.StatusCancelled)
	require.NoError(t, err)

	contact := "x"
	_, err = f.uc.UpdateDraft(ctx, op.ID, inventory.UpdateDraftInput{Contact: &contact})
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.UpdateDraft(ctx, "nope", inventory.UpdateDraftInput{Contact: &contact})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adaptadores de request
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateFromRequest(t *testing.T) {
	f := newFixture(t)
	res, err := f.uc.CreateFromRequest(context.Background(), dto.CreateOperationRequest{
		Type:         "receipt",
		ScheduleDate: "2024-05-20",
		Contact:      "  Azure Interior ",
		LocationID:   locStock,
		Items:        []dto.OperationItemRequest{{ProductID: prodDesk, Quantity: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Receipt", res.Type)
	assert.Equal(t, "Draft", res.Status)
	assert.Equal(t, "Vendor", res.Source)
	assert.Equal(t, "WH/Stock", res.Destination)
	assert.Equal(t, "Azure Interior", res.Contact)
	assert.Equal(t, "2024-05-20", res.ScheduleDate)
	assert.Equal(t, []dto.OperationItemResponse{{ProductID: prodDesk, Quantity: 10, Done: 0}}, res.Items)

	_, err = f.uc.CreateFromRequest(context.Background(), dto.CreateOperationRequest{
		Type: "RECEIPT", ScheduleDate: "20/05/2024", LocationID: locStock,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	rfc, err := f.uc.CreateFromRequest(context.Background(), dto.CreateOperationRequest{
		Type: "DELIVERY", ScheduleDate: "2024-05-21T15:04:05Z", LocationID: locStock,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-21", rfc.ScheduleDate)
	assert.Equal(t, "Customer", rfc.Destination)
	assert.Equal(t, "WH/Stock", rfc.Source)
}

func TestUpdateStatusFromRequest_EstadoDesconocido(t *testing.T) {
	f := newFixture(t)
	op := f.create(t, entity.OperationTypeReceipt, locStock, item(prodDesk, 1))
	_, err := f.uc.UpdateStatusFromRequest(context.Background(), op.ID, dto.UpdateStatusRequest{Status: "SHIPPED"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	res, err := f.uc.UpdateStatusFromRequest(context.Background(), op.ID, dto.UpdateStatusRequest{Status: "ready"})
	require.NoError(t, err)
	assert.Equal(t, "Ready", res.Status)
}

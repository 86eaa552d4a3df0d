package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/alert"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/analytics"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/dto"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/memory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/pdf"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/seed"
	apphttp "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/interfaces/http"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
	pkgjwt "github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/jwt"
)

const (
	deskID = "33333333-3333-3333-3333-333333333331"
	lampID = "33333333-3333-3333-3333-333333333333"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: app completa sobre el store en memoria con el catálogo demo.
// ──────────────────────────────────────────────────────────────────────────────

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	store.Load(seed.Demo(time.Now().UTC()))
	log := logger.Nop()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Operations: inventory.NewOperationUseCase(store, store.Operations(), store.Moves(), store.Products(), pdf.NewSlipGenerator("test"), log),
		Metrics:    analytics.NewMetricsUseCase(store.Metrics()),
		Alerts:     alert.NewAlertUseCase(store.Alerts(), store.Products(), log),
		JWTSecret:  testJWTSecret,
		Log:        log,
	})
	return app
}

func tokenWith(t *testing.T, role string, permissions ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, permissions, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func fullAccess(t *testing.T) string {
	return tokenWith(t, "Operator", apphttp.PermissionOperations, apphttp.PermissionAuditLog, apphttp.PermissionInventory)
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createReceipt(t *testing.T, app *fiber.App, token string, productID string, qty int64) dto.OperationResponse {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/operations", token, dto.CreateOperationRequest{
		Type:         "receipt",
		ScheduleDate: "2025-03-01",
		Contact:      "Azure Interior",
		LocationID:   seed.DemoStockID,
		Items:        []dto.OperationItemRequest{{ProductID: productID, Quantity: qty}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.OperationResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Operaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestOperations_RecepcionCompleta(t *testing.T) {
	app := buildAPI(t)
	tok := fullAccess(t)

	op := createReceipt(t, app, tok, deskID, 5)
	assert.Equal(t, "WH/IN/0001", op.Reference)
	assert.Equal(t, "Receipt", op.Type)
	assert.Equal(t, "Draft", op.Status)
	assert.Equal(t, "Vendor", op.Source)
	assert.Equal(t, "WH/Stock", op.Destination)
	assert.Equal(t, "2025-03-01", op.ScheduleDate)

	resp := call(t, app, http.MethodPatch, "/api/operations/"+op.ID+"/status", tok, dto.UpdateStatusRequest{Status: "done"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	done := decode[dto.OperationResponse](t, resp)
	assert.Equal(t, "Done", done.Status)
	require.Len(t, done.Items, 1)
	assert.Equal(t, int64(5), done.Items[0].Done)

	// Finalizar de nuevo no vuelve a mover stock.
	resp = call(t, app, http.MethodPatch, "/api/operations/"+op.ID+"/status", tok, dto.UpdateStatusRequest{Status: "DONE"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_FINALIZED", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/operations/moves/history?direction=in", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	moves := decode[[]dto.MoveResponse](t, resp)
	require.Len(t, moves, 1)
	assert.Equal(t, "WH/IN/0001", moves[0].Reference)
	assert.Equal(t, "[DESK-001] Office Desk", moves[0].Product)
	assert.Equal(t, int64(5), moves[0].Quantity)
	assert.Equal(t, "in", moves[0].Type)
	assert.Equal(t, "Vendor", moves[0].From)
	assert.Equal(t, "WH/Stock", moves[0].To)

	resp = call(t, app, http.MethodGet, "/api/operations/metrics", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	m := decode[dto.OperationMetricsDTO](t, resp)
	assert.Equal(t, int64(1), m.Receipts.Received)
	require.Len(t, m.Flow, 7)
	assert.Equal(t, int64(1), m.Flow[6].Receipts)
}

func TestOperations_EntregaSinStockQuedaEnEspera(t *testing.T) {
	app := buildAPI(t)
	tok := fullAccess(t)

	resp := call(t, app, http.MethodPost, "/api/operations", tok, dto.CreateOperationRequest{
		Type:         "DELIVERY",
		ScheduleDate: "2025-03-01",
		LocationID:   seed.DemoStockID,
		Items:        []dto.OperationItemRequest{{ProductID: lampID, Quantity: 3}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	op := decode[dto.OperationResponse](t, resp)
	assert.Equal(t, "WH/OUT/0001", op.Reference)
	assert.Equal(t, "Waiting", op.Status)
	assert.Equal(t, "Customer", op.Destination)

	resp = call(t, app, http.MethodGet, "/api/operations?type=delivery&status=waiting", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.OperationResponse](t, resp), 1)

	// Recibir stock y reevaluar: la entrega pasa a Ready.
	rec := createReceipt(t, app, tok, lampID, 10)
	resp = call(t, app, http.MethodPatch, "/api/operations/"+rec.ID+"/status", tok, dto.UpdateStatusRequest{Status: "DONE"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/operations/refresh-readiness", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.RefreshReadinessResponse](t, resp).Promoted)

	resp = call(t, app, http.MethodGet, "/api/operations/"+op.ID, tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ready", decode[dto.OperationResponse](t, resp).Status)
}

func TestOperations_EditarBorrador(t *testing.T) {
	app := buildAPI(t)
	tok := fullAccess(t)
	op := createReceipt(t, app, tok, deskID, 5)

	contact := "Gemini Furniture"
	items := []dto.OperationItemRequest{{ProductID: deskID, Quantity: 2}, {ProductID: lampID, Quantity: 4}}
	resp := call(t, app, http.MethodPatch, "/api/operations/"+op.ID, tok, dto.UpdateOperationRequest{Contact: &contact, Items: &items})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.OperationResponse](t, resp)
	assert.Equal(t, contact, out.Contact)
	require.Len(t, out.Items, 2)
	assert.Equal(t, lampID, out.Items[1].ProductID)

	resp = call(t, app, http.MethodPatch, "/api/operations/"+op.ID+"/status", tok, dto.UpdateStatusRequest{Status: "CANCELLED"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodPatch, "/api/operations/"+op.ID, tok, dto.UpdateOperationRequest{Contact: &contact})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestOperations_Errores(t *testing.T) {
	app := buildAPI(t)
	tok := fullAccess(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"tipo desconocido", http.MethodPost, "/api/operations", dto.CreateOperationRequest{Type: "SCRAP", ScheduleDate: "2025-01-01", LocationID: seed.DemoStockID}, 400, "VALIDATION"},
		{"sin ubicación", http.MethodPost, "/api/operations", dto.CreateOperationRequest{Type: "RECEIPT", ScheduleDate: "2025-01-01"}, 400, "VALIDATION"},
		{"cantidad negativa", http.MethodPost, "/api/operations", dto.CreateOperationRequest{Type: "RECEIPT", ScheduleDate: "2025-01-01", LocationID: seed.DemoStockID, Items: []dto.OperationItemRequest{{ProductID: deskID, Quantity: -1}}}, 400, "VALIDATION"},
		{"producto desconocido", http.MethodPost, "/api/operations", dto.CreateOperationRequest{Type: "RECEIPT", ScheduleDate: "2025-01-01", LocationID: seed.DemoStockID, Items: []dto.OperationItemRequest{{ProductID: "no-existe", Quantity: 1}}}, 400, "VALIDATION"},
		{"fecha inválida", http.MethodPost, "/api/operations", dto.CreateOperationRequest{Type: "RECEIPT", ScheduleDate: "ayer", LocationID: seed.DemoStockID}, 400, "VALIDATION"},
		{"operación inexistente", http.MethodGet, "/api/operations/no-existe", nil, 404, "NOT_FOUND"},
		{"estado desconocido", http.MethodPatch, "/api/operations/no-existe/status", dto.UpdateStatusRequest{Status: "LOST"}, 400, "VALIDATION"},
		{"filtro inválido", http.MethodGet, "/api/operations?status=LOST", nil, 400, "VALIDATION"},
		{"dirección inválida", http.MethodGet, "/api/operations/moves/history?direction=sideways", nil, 400, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(t, app, tc.method, tc.path, tok, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
}

func TestOperations_CuerpoInvalido(t *testing.T) {
	app := buildAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/operations", bytes.NewBufferString("{no json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fullAccess(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOperations_Comprobante(t *testing.T) {
	app := buildAPI(t)
	tok := fullAccess(t)
	op := createReceipt(t, app, tok, deskID, 2)

	resp := call(t, app, http.MethodGet, "/api/operations/"+op.ID+"/slip", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "WH-IN-0001.pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestPermisos_HistorialRequiereAuditLog(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/operations/moves/history", tokenWith(t, "Operator", apphttp.PermissionOperations), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/operations/moves/history", tokenWith(t, "Operator", apphttp.PermissionAuditLog), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPermisos_AdminPasaSinPermisos(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/alerts", tokenWith(t, "Admin"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPermisos_SinToken(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/operations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestAlerts_BarridoListadoYResolucion(t *testing.T) {
	app := buildAPI(t)
	tok := fullAccess(t)

	resp := call(t, app, http.MethodPost, "/api/alerts/sweep", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decode[dto.SweepResponse](t, resp)
	assert.Equal(t, 2, first.Checked) // CHAIR-001 y LAMP-001
	assert.Equal(t, 2, first.Created)

	resp = call(t, app, http.MethodPost, "/api/alerts/sweep", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.SweepResponse](t, resp).Created)

	resp = call(t, app, http.MethodGet, "/api/alerts?unresolved=true", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	open := decode[[]dto.AlertResponse](t, resp)
	require.Len(t, open, 2)

	resp = call(t, app, http.MethodPatch, "/api/alerts/"+open[0].ID+"/resolve", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resolved := decode[dto.AlertResponse](t, resp)
	assert.True(t, resolved.Resolved)
	assert.NotNil(t, resolved.ResolvedAt)

	resp = call(t, app, http.MethodGet, "/api/alerts?unresolved=true", tok, nil)
	assert.Len(t, decode[[]dto.AlertResponse](t, resp), 1)

	resp = call(t, app, http.MethodGet, "/api/alerts", tok, nil)
	assert.Len(t, decode[[]dto.AlertResponse](t, resp), 2)

	resp = call(t, app, http.MethodPatch, "/api/alerts/no-existe/resolve", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

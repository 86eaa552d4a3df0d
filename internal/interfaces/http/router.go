package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/alert"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/analytics"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Operations *inventory.OperationUseCase
	Metrics    *analytics.MetricsUseCase
	Alerts     *alert.AlertUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", RequestLogger(log))

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	opHandler := NewOperationHandler(deps.Operations, deps.Metrics, log)

	// Historial: permiso audit_log. Se registra antes de /operations/:id.
	protected.Get("/operations/moves/history", RequirePermission(PermissionAuditLog), opHandler.MoveHistory)

	ops := protected.Group("/operations", RequirePermission(PermissionOperations))
	ops.Post("/", opHandler.Create)
	ops.Get("/", opHandler.List)
	ops.Get("/metrics", opHandler.Metrics)
	ops.Post("/refresh-readiness", opHandler.RefreshReadiness)
	ops.Get("/:id", opHandler.GetByID)
	ops.Get("/:id/slip", opHandler.Slip)
	ops.Patch("/:id/status", opHandler.UpdateStatus)
	ops.Patch("/:id", opHandler.Update)

	alertHandler := NewAlertHandler(deps.Alerts, log)
	alerts := protected.Group("/alerts", RequirePermission(PermissionInventory))
	alerts.Get("/", alertHandler.List)
	alerts.Post("/sweep", alertHandler.Sweep)
	alerts.Patch("/:id/resolve", alertHandler.Resolve)
}

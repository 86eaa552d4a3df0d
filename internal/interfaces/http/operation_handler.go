package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/analytics"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/dto"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
	ledger "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/validator"
)

// maxMovesLimit tope del historial de movimientos por petición.
const maxMovesLimit = 500

// OperationHandler maneja las peticiones HTTP de operaciones de stock (protegido).
type OperationHandler struct {
	uc      *inventory.OperationUseCase
	metrics *analytics.MetricsUseCase
	log     *logger.Logger
}

// NewOperationHandler construye el handler.
func NewOperationHandler(uc *inventory.OperationUseCase, metrics *analytics.MetricsUseCase, log *logger.Logger) *OperationHandler {
	return &OperationHandler{uc: uc, metrics: metrics, log: log}
}

// Create godoc
// @Summary      Crear operación
// @Description  Crea una recepción, entrega, traslado interno o ajuste con referencia WH/IN/0001.
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateOperationRequest  true  "type, scheduleDate, locationId, items"
// @Success      201   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/operations [post]
func (h *OperationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.Type = strings.ToUpper(strings.TrimSpace(in.Type))
	if err := validator.ValidateStruct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.CreateFromRequest(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar operaciones
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "RECEIPT, DELIVERY, INTERNAL o ADJUSTMENT"
// @Param        status  query  string  false  "DRAFT, WAITING, READY, DONE o CANCELLED"
// @Success      200  {array}   dto.OperationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/operations [get]
func (h *OperationHandler) List(c *fiber.Ctx) error {
	var filter repository.OperationFilter
	if t := strings.ToUpper(strings.TrimSpace(c.Query("type"))); t != "" {
		typ, err := ledger.ParseType(t)
		if err != nil {
			return writeError(c, h.log, err)
		}
		filter.Type = typ
	}
	if s := strings.ToUpper(strings.TrimSpace(c.Query("status"))); s != "" {
		status, err := ledger.ParseStatus(s)
		if err != nil {
			return writeError(c, h.log, err)
		}
		filter.Status = status
	}
	ops, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(inventory.ToOperationResponses(ops))
}

// GetByID godoc
// @Summary      Obtener operación
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la operación"
// @Success      200  {object}  dto.OperationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/{id} [get]
func (h *OperationHandler) GetByID(c *fiber.Ctx) error {
	op, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(inventory.ToOperationResponse(op))
}

// Update godoc
// @Summary      Editar borrador
// @Description  Cambia contacto y/o reemplaza los ítems. Rechaza operaciones DONE o CANCELLED.
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "ID de la operación"
// @Param        body  body      dto.UpdateOperationRequest  true  "contact, items"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operations/{id} [patch]
func (h *OperationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validator.ValidateStruct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.UpdateDraftFromRequest(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado
// @Description  DONE finaliza la operación: ajusta stock y registra un movimiento por ítem.
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "ID de la operación"
// @Param        body  body      dto.UpdateStatusRequest  true  "status"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/operations/{id}/status [patch]
func (h *OperationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.Status = strings.ToUpper(strings.TrimSpace(in.Status))
	if err := validator.ValidateStruct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.UpdateStatusFromRequest(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// RefreshReadiness godoc
// @Summary      Reevaluar operaciones en espera
// @Description  Pasa a READY las entregas y traslados WAITING cuyo stock ya alcanza.
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RefreshReadinessResponse
// @Router       /api/operations/refresh-readiness [post]
func (h *OperationHandler) RefreshReadiness(c *fiber.Ctx) error {
	n, err := h.uc.RefreshReadiness(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.RefreshReadinessResponse{Promoted: n})
}

// Metrics godoc
// @Summary      Métricas de operaciones
// @Description  Conteos de recepciones y entregas por estado y flujo diario de los últimos 7 días.
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OperationMetricsDTO
// @Router       /api/operations/metrics [get]
func (h *OperationHandler) Metrics(c *fiber.Ctx) error {
	m, err := h.metrics.GetMetrics(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(m)
}

// MoveHistory godoc
// @Summary      Historial de movimientos
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        direction  query  string  false  "in, out o internal"
// @Param        productId  query  string  false  "Filtrar por producto"
// @Param        limit      query  int     false  "Máximo de filas (1-500, por defecto 500)"
// @Success      200  {array}   dto.MoveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/operations/moves/history [get]
func (h *OperationHandler) MoveHistory(c *fiber.Ctx) error {
	filter := repository.MoveFilter{
		ProductID: strings.TrimSpace(c.Query("productId")),
		Limit:     c.QueryInt("limit", maxMovesLimit),
	}
	if filter.Limit <= 0 || filter.Limit > maxMovesLimit {
		filter.Limit = maxMovesLimit
	}
	if d := strings.ToUpper(strings.TrimSpace(c.Query("direction"))); d != "" {
		switch entity.MoveDirection(d) {
		case entity.DirectionIn, entity.DirectionOut, entity.DirectionInternal:
			filter.Direction = entity.MoveDirection(d)
		default:
			return writeError(c, h.log, fmt.Errorf("%w: direction debe ser in, out o internal", domain.ErrInvalidInput))
		}
	}
	views, err := h.uc.ListMoves(c.Context(), filter)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(inventory.ToMoveResponses(views))
}

// Slip godoc
// @Summary      Comprobante PDF
// @Tags         operations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la operación"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/operations/{id}/slip [get]
func (h *OperationHandler) Slip(c *fiber.Ctx) error {
	pdf, op, err := h.uc.Slip(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	name := strings.ReplaceAll(op.Reference, "/", "-") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	return c.Send(pdf)
}

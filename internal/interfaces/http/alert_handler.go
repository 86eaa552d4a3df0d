package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/alert"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/dto"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
)

// AlertHandler alertas de stock bajo (protegido, permiso inventory).
type AlertHandler struct {
	uc  *alert.AlertUseCase
	log *logger.Logger
}

func NewAlertHandler(uc *alert.AlertUseCase, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar alertas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        unresolved  query  bool  false  "true = solo abiertas"
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.QueryBool("unresolved", false))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

// Resolve godoc
// @Summary      Resolver alerta
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [patch]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Sweep godoc
// @Summary      Barrido manual de stock bajo
// @Description  Comparte ejecución con el barrido periódico si hay uno en curso.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SweepResponse
// @Router       /api/alerts/sweep [post]
func (h *AlertHandler) Sweep(c *fiber.Ctx) error {
	res, err := h.uc.Sweep(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.SweepResponse{Checked: res.Checked, Created: res.Created, Skipped: res.Skipped})
}

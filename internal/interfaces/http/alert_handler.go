package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// AlertHandler maneja las peticiones HTTP de alertas globales (protegido).
type AlertHandler struct {
	uc *inventory.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *inventory.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas de stock
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        is_resolved  query  bool  false  "Filtrar por estado de resolución"
// @Param        skip         query  int   false  "Offset"  default(0)
// @Param        limit        query  int   false  "Límite"  default(50)
// @Success      200  {array}  dto.StockAlertResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	var isResolved *bool
	if raw := c.Query("is_resolved"); raw != "" {
		v := c.QueryBool("is_resolved")
		isResolved = &v
	}
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Limit: c.QueryInt("limit", 50)}
	alerts, err := h.uc.List(c.Context(), isResolved, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, inventory.ToAlertResponse(a))
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver una alerta manualmente
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.StockAlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	alert, err := h.uc.Resolve(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(inventory.ToAlertResponse(alert))
}

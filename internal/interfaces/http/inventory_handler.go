package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del ledger de stock (protegido).
type InventoryHandler struct {
	ops   *inventory.StockOperationsUseCase
	query *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ops *inventory.StockOperationsUseCase, query *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{ops: ops, query: query}
}

// Create godoc
// @Summary      Crear registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos del inventario"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ops.CreateInventory(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inventory.ToInventoryResponse(out))
}

// List godoc
// @Summary      Listar inventario con filtros y orden
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_ids        query  []string  false  "IDs de producto"
// @Param        location           query  string    false  "Substring de bodega"
// @Param        low_stock_only     query  bool      false  "Solo bajo stock"
// @Param        out_of_stock_only  query  bool      false  "Solo agotados"
// @Param        min_stock          query  int       false  "Stock mínimo"
// @Param        max_stock          query  int       false  "Stock máximo"
// @Param        sort_by            query  string    false  "Columna de orden"  default(product_id)
// @Param        sort_order         query  string    false  "asc | desc"        default(asc)
// @Param        skip               query  int       false  "Offset"            default(0)
// @Param        limit              query  int       false  "Límite"            default(50)
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var q dto.ListInventoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	out, err := h.query.List(c.Context(), q)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Listar registros en o bajo su nivel mínimo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.query.LowStock(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// OutOfStock godoc
// @Summary      Listar registros agotados
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory/out-of-stock [get]
func (h *InventoryHandler) OutOfStock(c *fiber.Ctx) error {
	out, err := h.query.OutOfStock(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByProduct godoc
// @Summary      Obtener inventario por product_id
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id} [get]
func (h *InventoryHandler) GetByProduct(c *fiber.Ctx) error {
	out, err := h.query.GetByProduct(c.Context(), c.Params("product_id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(inventory.ToInventoryResponse(out))
}

// UpdateSettings godoc
// @Summary      Actualizar configuración del inventario (umbrales, ubicación, costo)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id} [put]
func (h *InventoryHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ops.UpdateSettings(c.Context(), c.Params("product_id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(inventory.ToInventoryResponse(out))
}

// Adjust godoc
// @Summary      Ajustar stock por un delta (negativo se trunca en cero)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body  body  dto.StockAdjustmentRequest  true  "Delta y notas"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.StockAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ops.AdjustStock(c.Context(), c.Params("product_id"), in, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(inventory.ToInventoryResponse(out))
}

// Reserve godoc
// @Summary      Reservar stock para un pedido
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body  body  dto.StockReservationRequest  true  "Cantidad a reservar"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      400  {object}  dto.ErrorResponse  "stock disponible insuficiente"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id}/reserve [post]
func (h *InventoryHandler) Reserve(c *fiber.Ctx) error {
	var in dto.StockReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ops.ReserveStock(c.Context(), c.Params("product_id"), in, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(inventory.ToInventoryResponse(out))
}

// Release godoc
// @Summary      Liberar stock reservado (se trunca a lo reservado)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body  body  dto.StockReleaseRequest  true  "Cantidad a liberar"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id}/release [post]
func (h *InventoryHandler) Release(c *fiber.Ctx) error {
	var in dto.StockReleaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ops.ReleaseStock(c.Context(), c.Params("product_id"), in, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(inventory.ToInventoryResponse(out))
}

// SetStock godoc
// @Summary      Fijar nivel absoluto de stock (conteo físico)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body  body  dto.SetStockLevelRequest  true  "Nivel observado"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id}/stock [put]
func (h *InventoryHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ops.SetAbsoluteStock(c.Context(), c.Params("product_id"), in, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(inventory.ToInventoryResponse(out))
}

// Movements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  path   string  true   "ID del producto"
// @Param        skip        query  int     false  "Offset"  default(0)
// @Param        limit       query  int     false  "Límite"  default(100)
// @Success      200  {array}   dto.StockMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id}/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	page := dto.PageRequest{Skip: c.QueryInt("skip", 0), Limit: c.QueryInt("limit", 100)}
	movements, err := h.query.ListMovements(c.Context(), c.Params("product_id"), page)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, inventory.ToMovementResponse(m))
	}
	return c.JSON(out)
}

// ProductAlerts godoc
// @Summary      Alertas de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id   path   string  true   "ID del producto"
// @Param        is_resolved  query  bool    false  "Filtrar por estado de resolución"
// @Success      200  {array}   dto.StockAlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id}/alerts [get]
func (h *InventoryHandler) ProductAlerts(c *fiber.Ctx) error {
	var isResolved *bool
	if raw := c.Query("is_resolved"); raw != "" {
		v := c.QueryBool("is_resolved")
		isResolved = &v
	}
	alerts, err := h.query.ListProductAlerts(c.Context(), c.Params("product_id"), isResolved)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.StockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, inventory.ToAlertResponse(a))
	}
	return c.JSON(out)
}

// mapDomainError traduce errores de dominio a respuestas HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado para ese producto"})
	case domain.ErrAlreadyExists:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el producto ya tiene registro de inventario"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock disponible insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

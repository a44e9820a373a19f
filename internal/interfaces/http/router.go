package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockOps  *inventory.StockOperationsUseCase
	QueryUC   *inventory.QueryUseCase
	AlertUC   *inventory.AlertUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Configurar umbrales es tarea de administración; el resto lo puede
	// operar cualquier rol autenticado.
	adminOnly := RequireRole(entity.RoleAdmin)

	// Inventory (protegido)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockOps, deps.QueryUC)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/", inventoryHandler.List)
	// Rutas fijas antes de :product_id para que Fiber no las capture como parámetro.
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/out-of-stock", inventoryHandler.OutOfStock)
	inv.Get("/:product_id", inventoryHandler.GetByProduct)
	inv.Put("/:product_id", adminOnly, inventoryHandler.UpdateSettings)
	inv.Post("/:product_id/adjust", inventoryHandler.Adjust)
	inv.Post("/:product_id/reserve", inventoryHandler.Reserve)
	inv.Post("/:product_id/release", inventoryHandler.Release)
	inv.Put("/:product_id/stock", inventoryHandler.SetStock)
	inv.Get("/:product_id/movements", inventoryHandler.Movements)
	inv.Get("/:product_id/alerts", inventoryHandler.ProductAlerts)

	// Alerts (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/:id/resolve", alertHandler.Resolve)
}

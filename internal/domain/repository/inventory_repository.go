package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// InventoryFilter filtros conjuntivos para listados de inventario.
// Solo se aplican los campos no-cero.
type InventoryFilter struct {
	ProductIDs     []string
	Location       string // substring, case-insensitive
	LowStockOnly   bool   // current_stock <= min_stock_level
	OutOfStockOnly bool   // current_stock <= 0
	MinStock       *int   // current_stock >= MinStock
	MaxStock       *int   // current_stock <= MaxStock
}

// InventorySort orden de listado. Column debe ser una de las columnas
// permitidas por el adaptador; Desc invierte el orden.
type InventorySort struct {
	Column string
	Desc   bool
}

// InventoryRepository define el puerto de persistencia para registros de inventario.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByProductID(productID string) (*entity.Inventory, error)
	// GetByProductIDForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción.
	GetByProductIDForUpdate(productID string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	List(ctx context.Context, filter InventoryFilter, sort InventorySort, limit, offset int) ([]*entity.Inventory, int, error)
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory representa el registro de inventario de un producto (una fila por product_id).
// AvailableStock es derivado: max(0, CurrentStock - ReservedStock). Se persiste por
// conveniencia de lectura pero se recalcula en cada mutación y en cada listado.
type Inventory struct {
	ID              string
	ProductID       string // FK opaca al catálogo de productos
	CurrentStock    int
	ReservedStock   int
	AvailableStock  int
	MinStockLevel   int
	MaxStockLevel   int
	ReorderPoint    int
	ReorderQuantity int
	Location        string // bodega
	BinLocation     string // estante/bin dentro de la bodega
	CostPrice       *decimal.Decimal
	LastRestocked   *time.Time
	LastCounted     *time.Time // último conteo físico
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/inventory.
type CreateInventoryRequest struct {
	ProductID       string           `json:"product_id"`
	CurrentStock    int              `json:"current_stock"`
	ReservedStock   int              `json:"reserved_stock"`
	MinStockLevel   *int             `json:"min_stock_level,omitempty"`
	MaxStockLevel   *int             `json:"max_stock_level,omitempty"`
	ReorderPoint    *int             `json:"reorder_point,omitempty"`
	ReorderQuantity *int             `json:"reorder_quantity,omitempty"`
	Location        string           `json:"location,omitempty"`
	BinLocation     string           `json:"bin_location,omitempty"`
	CostPrice       *decimal.Decimal `json:"cost_price,omitempty"`
}

// UpdateInventoryRequest body para PUT /api/inventory/:product_id.
// Solo se aplican los campos presentes (punteros no nulos).
type UpdateInventoryRequest struct {
	MinStockLevel   *int             `json:"min_stock_level,omitempty"`
	MaxStockLevel   *int             `json:"max_stock_level,omitempty"`
	ReorderPoint    *int             `json:"reorder_point,omitempty"`
	ReorderQuantity *int             `json:"reorder_quantity,omitempty"`
	Location        *string          `json:"location,omitempty"`
	BinLocation     *string          `json:"bin_location,omitempty"`
	CostPrice       *decimal.Decimal `json:"cost_price,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

// StockAdjustmentRequest body para POST /api/inventory/:product_id/adjust.
// Adjustment puede ser negativo; el stock resultante se trunca en cero.
type StockAdjustmentRequest struct {
	Adjustment  int    `json:"adjustment"`
	Notes       string `json:"notes,omitempty"`
	ReferenceID string `json:"reference_id,omitempty"`
}

// StockReservationRequest body para POST /api/inventory/:product_id/reserve.
type StockReservationRequest struct {
	Quantity    int    `json:"quantity"`
	ReferenceID string `json:"reference_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// StockReleaseRequest body para POST /api/inventory/:product_id/release.
type StockReleaseRequest struct {
	Quantity    int    `json:"quantity"`
	ReferenceID string `json:"reference_id,omitempty"`
}

// SetStockLevelRequest body para PUT /api/inventory/:product_id/stock
// (conteo físico: fija el nivel absoluto).
type SetStockLevelRequest struct {
	NewStock  int              `json:"new_stock"`
	Notes     string           `json:"notes,omitempty"`
	CostPrice *decimal.Decimal `json:"cost_price,omitempty"`
}

// ListInventoryQuery query params para GET /api/inventory.
type ListInventoryQuery struct {
	ProductIDs     []string `query:"product_ids"`
	Location       string   `query:"location"`
	LowStockOnly   bool     `query:"low_stock_only"`
	OutOfStockOnly bool     `query:"out_of_stock_only"`
	MinStock       *int     `query:"min_stock"`
	MaxStock       *int     `query:"max_stock"`
	SortBy         string   `query:"sort_by"`
	SortOrder      string   `query:"sort_order"` // asc | desc
	PageRequest
}

// InventoryResponse representación HTTP de un registro de inventario.
type InventoryResponse struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	CurrentStock    int              `json:"current_stock"`
	ReservedStock   int              `json:"reserved_stock"`
	AvailableStock  int              `json:"available_stock"`
	MinStockLevel   int              `json:"min_stock_level"`
	MaxStockLevel   int              `json:"max_stock_level"`
	ReorderPoint    int              `json:"reorder_point"`
	ReorderQuantity int              `json:"reorder_quantity"`
	Location        string           `json:"location,omitempty"`
	BinLocation     string           `json:"bin_location,omitempty"`
	CostPrice       *decimal.Decimal `json:"cost_price,omitempty"`
	LastRestocked   *time.Time       `json:"last_restocked,omitempty"`
	LastCounted     *time.Time       `json:"last_counted,omitempty"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// InventoryListResponse página de inventario.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Total int                 `json:"total"`
	Skip  int                 `json:"skip"`
	Limit int                 `json:"limit"`
}

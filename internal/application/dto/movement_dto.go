package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementResponse representación HTTP de un movimiento de la bitácora.
type StockMovementResponse struct {
	ID            int64            `json:"id"`
	InventoryID   string           `json:"inventory_id"`
	ProductID     string           `json:"product_id"`
	MovementType  string           `json:"movement_type"`
	Quantity      int              `json:"quantity"` // con signo
	ReferenceID   string           `json:"reference_id,omitempty"`
	ReferenceType string           `json:"reference_type,omitempty"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	BatchNumber   string           `json:"batch_number,omitempty"`
	ExpiryDate    *time.Time       `json:"expiry_date,omitempty"`
	UserID        string           `json:"user_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

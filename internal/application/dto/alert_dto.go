package dto

import "time"

// StockAlertResponse representación HTTP de una alerta de stock.
type StockAlertResponse struct {
	ID             string     `json:"id"`
	InventoryID    string     `json:"inventory_id"`
	ProductID      string     `json:"product_id"`
	AlertType      string     `json:"alert_type"`
	ThresholdValue int        `json:"threshold_value"`
	CurrentValue   int        `json:"current_value"`
	Message        string     `json:"message,omitempty"`
	Priority       string     `json:"priority"`
	IsResolved     bool       `json:"is_resolved"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy     string     `json:"resolved_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

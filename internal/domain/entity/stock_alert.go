package entity

import "time"

// Tipos de alerta de stock.
const (
	AlertTypeLowStock   = "LOW_STOCK"
	AlertTypeOutOfStock = "OUT_OF_STOCK"
	AlertTypeOverstock  = "OVERSTOCK" // reservado para compatibilidad; el motor no lo genera
)

// Prioridades de alerta.
const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

// StockAlert es una alerta de umbral sobre un registro de inventario.
// Invariante de dedup: a lo más una alerta sin resolver por (InventoryID, AlertType).
// Las alertas se resuelven, nunca se eliminan.
type StockAlert struct {
	ID             string
	InventoryID    string
	ProductID      string
	AlertType      string
	ThresholdValue int // umbral que disparó la alerta
	CurrentValue   int // valor real al momento de disparar
	Message        string
	Priority       string
	IsResolved     bool
	ResolvedAt     *time.Time
	ResolvedBy     string // UserID; vacío si la resolvió el motor
	CreatedAt      time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeRESERVED   = "RESERVED"   // reserva para pedido
	MovementTypeRELEASED   = "RELEASED"   // liberación de reserva
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual
	MovementTypeDAMAGED    = "DAMAGED"    // dado de baja por daño
	MovementTypeEXPIRED    = "EXPIRED"    // vencido
)

// Tipos de referencia del movimiento.
const (
	ReferenceTypeOrder          = "ORDER"
	ReferenceTypeOrderCancelled = "ORDER_CANCELLED"
	ReferenceTypePurchaseOrder  = "PURCHASE_ORDER"
	ReferenceTypeAdjustment     = "ADJUSTMENT"
	ReferenceTypePhysicalCount  = "PHYSICAL_COUNT"
)

// StockMovement es el registro de auditoría de un cambio de stock. Append-only:
// una vez creado nunca se actualiza ni se elimina. El signo de Quantity codifica
// la dirección (positivo entrada, negativo salida).
type StockMovement struct {
	ID            int64 // asignado por la DB (BIGSERIAL)
	InventoryID   string
	ProductID     string
	MovementType  string
	Quantity      int // con signo
	ReferenceID   string
	ReferenceType string
	CostPrice     *decimal.Decimal
	Notes         string
	BatchNumber   string
	ExpiryDate    *time.Time
	UserID        string
	CreatedAt     time.Time
}

package inventory

// AvailableStock calcula el stock disponible (servicio de dominio).
// Disponible = max(0, StockActual - StockReservado)
func AvailableStock(current, reserved int) int {
	if available := current - reserved; available > 0 {
		return available
	}
	return 0
}

// ClampStock aplica un ajuste con piso en cero: un delta que dejaría el stock
// negativo se trunca a cero. Política documentada, no un error.
func ClampStock(current, delta int) int {
	if next := current + delta; next > 0 {
		return next
	}
	return 0
}

// IsOutOfStock indica si el producto está agotado.
func IsOutOfStock(current int) bool {
	return current <= 0
}

// IsLowStock indica si el stock está en o por debajo del nivel mínimo.
func IsLowStock(current, minLevel int) bool {
	return current <= minLevel
}

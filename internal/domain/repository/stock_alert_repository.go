package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// StockAlertRepository define el puerto de persistencia para alertas de stock.
// Las alertas se marcan resueltas, nunca se eliminan.
type StockAlertRepository interface {
	Create(alert *entity.StockAlert) error
	GetByID(id string) (*entity.StockAlert, error)
	// ListUnresolvedByInventory devuelve las alertas abiertas de un registro de
	// inventario. Usar dentro de la misma transacción que la mutación de stock.
	ListUnresolvedByInventory(inventoryID string) ([]*entity.StockAlert, error)
	MarkResolved(alert *entity.StockAlert) error
	ListByProduct(ctx context.Context, productID string, isResolved *bool) ([]*entity.StockAlert, error)
	List(ctx context.Context, isResolved *bool, limit, offset int) ([]*entity.StockAlert, error)
}

package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	dominv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ReconcileAlerts es la pasada de reconciliación del motor de alertas. Recibe el
// registro de inventario ya mutado y opera sobre sus alertas abiertas:
//
//  1. Resuelve cada alerta abierta cuya condición ya no se cumple
//     (OUT_OF_STOCK si current > 0; LOW_STOCK si current > min_stock_level).
//  2. Si current <= 0 y no queda OUT_OF_STOCK abierta, crea una (prioridad HIGH).
//  3. Si no, si current <= min_stock_level y no queda LOW_STOCK abierta, crea una (prioridad MEDIUM).
//
// Invariante: a lo más una alerta abierta por (inventario, tipo). La pasada es
// idempotente: ejecutarla dos veces sobre el mismo estado no cambia nada en la segunda.
// Debe invocarse dentro de la misma transacción que la mutación de stock, con la
// fila de inventario ya bloqueada (FOR UPDATE), para serializar reconciliaciones
// concurrentes sobre el mismo registro.
func ReconcileAlerts(alertRepo repository.StockAlertRepository, inv *entity.Inventory, now time.Time) error {
	open, err := alertRepo.ListUnresolvedByInventory(inv.ID)
	if err != nil {
		return err
	}

	stillOpen := map[string]bool{}
	for _, alert := range open {
		resolved := false
		switch alert.AlertType {
		case entity.AlertTypeOutOfStock:
			resolved = !dominv.IsOutOfStock(inv.CurrentStock)
		case entity.AlertTypeLowStock:
			resolved = !dominv.IsLowStock(inv.CurrentStock, inv.MinStockLevel)
		}
		if !resolved {
			stillOpen[alert.AlertType] = true
			continue
		}
		alert.IsResolved = true
		resolvedAt := now
		alert.ResolvedAt = &resolvedAt
		if err := alertRepo.MarkResolved(alert); err != nil {
			return err
		}
	}

	switch {
	case dominv.IsOutOfStock(inv.CurrentStock):
		if stillOpen[entity.AlertTypeOutOfStock] {
			return nil
		}
		return alertRepo.Create(&entity.StockAlert{
			ID:             uuid.New().String(),
			InventoryID:    inv.ID,
			ProductID:      inv.ProductID,
			AlertType:      entity.AlertTypeOutOfStock,
			ThresholdValue: 0,
			CurrentValue:   inv.CurrentStock,
			Message:        fmt.Sprintf("Producto %s agotado", inv.ProductID),
			Priority:       entity.PriorityHigh,
			CreatedAt:      now,
		})
	case dominv.IsLowStock(inv.CurrentStock, inv.MinStockLevel):
		if stillOpen[entity.AlertTypeLowStock] {
			return nil
		}
		return alertRepo.Create(&entity.StockAlert{
			ID:             uuid.New().String(),
			InventoryID:    inv.ID,
			ProductID:      inv.ProductID,
			AlertType:      entity.AlertTypeLowStock,
			ThresholdValue: inv.MinStockLevel,
			CurrentValue:   inv.CurrentStock,
			Message:        fmt.Sprintf("Producto %s por debajo del nivel mínimo de stock", inv.ProductID),
			Priority:       entity.PriorityMedium,
			CreatedAt:      now,
		})
	}
	return nil
}

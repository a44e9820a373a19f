package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	dominv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// Valores por defecto para umbrales al crear un registro de inventario.
const (
	defaultMinStockLevel   = 10
	defaultMaxStockLevel   = 1000
	defaultReorderPoint    = 20
	defaultReorderQuantity = 100
)

// StockOperationsUseCase implementa las operaciones transaccionales del ledger:
// crear registro, ajustar, reservar, liberar, fijar nivel absoluto y actualizar
// configuración. Cada mutación bloquea la fila (SELECT FOR UPDATE), escribe el
// movimiento de auditoría y reconcilia alertas dentro de la misma transacción;
// Commit o Rollback como unidad.
type StockOperationsUseCase struct {
	txRunner TxRunner
	invRepo  repository.InventoryRepository // atado al pool, solo lecturas fuera de tx
}

// NewStockOperationsUseCase construye el caso de uso.
func NewStockOperationsUseCase(txRunner TxRunner, invRepo repository.InventoryRepository) *StockOperationsUseCase {
	return &StockOperationsUseCase{txRunner: txRunner, invRepo: invRepo}
}

// CreateInventory crea el registro de inventario de un producto.
// Retorna ErrAlreadyExists si el producto ya tiene registro.
func (uc *StockOperationsUseCase) CreateInventory(ctx context.Context, in dto.CreateInventoryRequest) (*entity.Inventory, error) {
	if in.ProductID == "" || in.CurrentStock < 0 || in.ReservedStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	inv := &entity.Inventory{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		CurrentStock:    in.CurrentStock,
		ReservedStock:   in.ReservedStock,
		AvailableStock:  dominv.AvailableStock(in.CurrentStock, in.ReservedStock),
		MinStockLevel:   intOrDefault(in.MinStockLevel, defaultMinStockLevel),
		MaxStockLevel:   intOrDefault(in.MaxStockLevel, defaultMaxStockLevel),
		ReorderPoint:    intOrDefault(in.ReorderPoint, defaultReorderPoint),
		ReorderQuantity: intOrDefault(in.ReorderQuantity, defaultReorderQuantity),
		Location:        in.Location,
		BinLocation:     in.BinLocation,
		CostPrice:       in.CostPrice,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if inv.MinStockLevel < 0 || inv.MaxStockLevel < 0 || inv.ReorderPoint < 0 || inv.ReorderQuantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.invRepo.Create(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateSettings actualiza umbrales y metadatos: solo los campos presentes en el
// request. Siempre recalcula available_stock (defensa contra drift concurrente).
func (uc *StockOperationsUseCase) UpdateSettings(ctx context.Context, productID string, in dto.UpdateInventoryRequest) (*entity.Inventory, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		_ repository.StockMovementRepository,
		_ repository.StockAlertRepository,
	) error {
		inv, err := invRepo.GetByProductIDForUpdate(productID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if in.MinStockLevel != nil {
			inv.MinStockLevel = *in.MinStockLevel
		}
		if in.MaxStockLevel != nil {
			inv.MaxStockLevel = *in.MaxStockLevel
		}
		if in.ReorderPoint != nil {
			inv.ReorderPoint = *in.ReorderPoint
		}
		if in.ReorderQuantity != nil {
			inv.ReorderQuantity = *in.ReorderQuantity
		}
		if in.Location != nil {
			inv.Location = *in.Location
		}
		if in.BinLocation != nil {
			inv.BinLocation = *in.BinLocation
		}
		if in.CostPrice != nil {
			inv.CostPrice = in.CostPrice
		}
		if in.IsActive != nil {
			inv.IsActive = *in.IsActive
		}
		inv.AvailableStock = dominv.AvailableStock(inv.CurrentStock, inv.ReservedStock)
		inv.UpdatedAt = time.Now()
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AdjustStock aplica un ajuste manual con signo. Un delta que dejaría el stock
// negativo se trunca a cero (política, no error). Registra un movimiento
// ADJUSTMENT con quantity = delta y reconcilia alertas, todo en una transacción.
func (uc *StockOperationsUseCase) AdjustStock(ctx context.Context, productID string, in dto.StockAdjustmentRequest, userID string) (*entity.Inventory, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		inv, err := invRepo.GetByProductIDForUpdate(productID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		inv.CurrentStock = dominv.ClampStock(inv.CurrentStock, in.Adjustment)
		inv.AvailableStock = dominv.AvailableStock(inv.CurrentStock, inv.ReservedStock)
		if in.Adjustment > 0 {
			restocked := now
			inv.LastRestocked = &restocked
		}
		inv.UpdatedAt = now
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			InventoryID:   inv.ID,
			ProductID:     inv.ProductID,
			MovementType:  entity.MovementTypeADJUSTMENT,
			Quantity:      in.Adjustment,
			ReferenceID:   in.ReferenceID,
			ReferenceType: entity.ReferenceTypeAdjustment,
			Notes:         in.Notes,
			UserID:        userID,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := ReconcileAlerts(alertRepo, inv, now); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReserveStock aparta stock para un pedido. Falla con ErrInsufficientStock si
// disponible < cantidad: la transacción se revierte sin reserva parcial ni movimiento.
func (uc *StockOperationsUseCase) ReserveStock(ctx context.Context, productID string, in dto.StockReservationRequest, userID string) (*entity.Inventory, error) {
	if productID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		inv, err := invRepo.GetByProductIDForUpdate(productID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		available := inv.CurrentStock - inv.ReservedStock
		if available < in.Quantity {
			return domain.ErrInsufficientStock
		}
		now := time.Now()
		inv.ReservedStock += in.Quantity
		inv.AvailableStock = dominv.AvailableStock(inv.CurrentStock, inv.ReservedStock)
		inv.UpdatedAt = now
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			InventoryID:   inv.ID,
			ProductID:     inv.ProductID,
			MovementType:  entity.MovementTypeRESERVED,
			Quantity:      in.Quantity,
			ReferenceID:   in.ReferenceID,
			ReferenceType: entity.ReferenceTypeOrder,
			Notes:         in.Notes,
			UserID:        userID,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := ReconcileAlerts(alertRepo, inv, now); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReleaseStock devuelve reserva al disponible. Una liberación mayor que lo
// reservado se trunca: release = min(quantity, reserved_stock); nunca deja
// reserved_stock negativo. No toca current_stock.
func (uc *StockOperationsUseCase) ReleaseStock(ctx context.Context, productID string, in dto.StockReleaseRequest, userID string) (*entity.Inventory, error) {
	if productID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		inv, err := invRepo.GetByProductIDForUpdate(productID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		release := in.Quantity
		if release > inv.ReservedStock {
			release = inv.ReservedStock
		}
		now := time.Now()
		inv.ReservedStock -= release
		inv.AvailableStock = dominv.AvailableStock(inv.CurrentStock, inv.ReservedStock)
		inv.UpdatedAt = now
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			InventoryID:   inv.ID,
			ProductID:     inv.ProductID,
			MovementType:  entity.MovementTypeRELEASED,
			Quantity:      release,
			ReferenceID:   in.ReferenceID,
			ReferenceType: entity.ReferenceTypeOrderCancelled,
			UserID:        userID,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := ReconcileAlerts(alertRepo, inv, now); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetAbsoluteStock fija el nivel absoluto tras un conteo físico. Se computa como
// un ajuste de (new_stock - current_stock) con reference_id PHYSICAL_COUNT; si
// el delta es cero no se escribe movimiento. El cost_price opcional se aplica en
// la misma unidad de trabajo, y last_counted queda estampado siempre.
func (uc *StockOperationsUseCase) SetAbsoluteStock(ctx context.Context, productID string, in dto.SetStockLevelRequest, userID string) (*entity.Inventory, error) {
	if productID == "" || in.NewStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		inv, err := invRepo.GetByProductIDForUpdate(productID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		delta := in.NewStock - inv.CurrentStock

		if delta != 0 {
			inv.CurrentStock = in.NewStock
			inv.AvailableStock = dominv.AvailableStock(inv.CurrentStock, inv.ReservedStock)
			if delta > 0 {
				restocked := now
				inv.LastRestocked = &restocked
			}
			notes := fmt.Sprintf("Nivel de stock fijado en %d", in.NewStock)
			if in.Notes != "" {
				notes = notes + ". " + in.Notes
			}
			mov := &entity.StockMovement{
				InventoryID:   inv.ID,
				ProductID:     inv.ProductID,
				MovementType:  entity.MovementTypeADJUSTMENT,
				Quantity:      delta,
				ReferenceID:   entity.ReferenceTypePhysicalCount,
				ReferenceType: entity.ReferenceTypeAdjustment,
				Notes:         notes,
				UserID:        userID,
				CreatedAt:     now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}

		counted := now
		inv.LastCounted = &counted
		if in.CostPrice != nil {
			inv.CostPrice = in.CostPrice
		}
		inv.UpdatedAt = now
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		if err := ReconcileAlerts(alertRepo, inv, now); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func intOrDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

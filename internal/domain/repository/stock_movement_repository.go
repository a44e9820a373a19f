package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para la bitácora de movimientos.
// Solo inserción y lectura: los movimientos nunca se actualizan ni se eliminan.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error)
}

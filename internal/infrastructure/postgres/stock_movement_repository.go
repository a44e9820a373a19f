package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// Ensure StockMovementRepo implements repository.StockMovementRepository.
var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo es la implementación PostgreSQL de StockMovementRepository.
// La bitácora es append-only: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el repositorio sobre un pool o una tx.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento y asigna el ID secuencial generado por la DB.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (inventory_id, product_id, movement_type, quantity,
		                             reference_id, reference_type, cost_price, notes,
		                             batch_number, expiry_date, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := r.q.QueryRow(context.Background(), query,
		movement.InventoryID, movement.ProductID, movement.MovementType, movement.Quantity,
		nullStr(movement.ReferenceID), nullStr(movement.ReferenceType), movement.CostPrice,
		nullStr(movement.Notes), nullStr(movement.BatchNumber), movement.ExpiryDate,
		nullStr(movement.UserID), movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve los movimientos de un producto, más reciente primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, inventory_id, product_id, movement_type, quantity,
		       reference_id, reference_type, cost_price, notes,
		       batch_number, expiry_date, user_id, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	movements := make([]*entity.StockMovement, 0)
	for rows.Next() {
		var m entity.StockMovement
		var referenceID, referenceType, notes, batchNumber, userID *string

		err := rows.Scan(
			&m.ID, &m.InventoryID, &m.ProductID, &m.MovementType, &m.Quantity,
			&referenceID, &referenceType, &m.CostPrice, &notes,
			&batchNumber, &m.ExpiryDate, &userID, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if referenceID != nil {
			m.ReferenceID = *referenceID
		}
		if referenceType != nil {
			m.ReferenceType = *referenceType
		}
		if notes != nil {
			m.Notes = *notes
		}
		if batchNumber != nil {
			m.BatchNumber = *batchNumber
		}
		if userID != nil {
			m.UserID = *userID
		}
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock movement rows: %w", err)
	}
	return movements, nil
}

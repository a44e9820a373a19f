package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// Ensure StockAlertRepo implements repository.StockAlertRepository.
var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

// StockAlertRepo es la implementación PostgreSQL de StockAlertRepository.
type StockAlertRepo struct {
	q Querier
}

// NewStockAlertRepository construye el repositorio sobre un pool o una tx.
func NewStockAlertRepository(q Querier) *StockAlertRepo {
	return &StockAlertRepo{q: q}
}

const alertColumns = `id, inventory_id, product_id, alert_type, threshold_value,
	       current_value, message, priority, is_resolved, resolved_at, resolved_by, created_at`

// Create inserta una alerta. El índice parcial uq_stock_alerts_open respalda
// el dedup de alertas abiertas por (inventory_id, alert_type).
func (r *StockAlertRepo) Create(alert *entity.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (id, inventory_id, product_id, alert_type, threshold_value,
		                          current_value, message, priority, is_resolved,
		                          resolved_at, resolved_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.InventoryID, alert.ProductID, alert.AlertType, alert.ThresholdValue,
		alert.CurrentValue, nullStr(alert.Message), alert.Priority, alert.IsResolved,
		alert.ResolvedAt, nullStr(alert.ResolvedBy), alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock alert: %w", err)
	}
	return nil
}

// GetByID busca una alerta. Devuelve (nil, nil) si no existe.
func (r *StockAlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE id = $1`
	alert, err := scanAlert(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return alert, nil
}

// ListUnresolvedByInventory devuelve las alertas abiertas de un registro de inventario.
func (r *StockAlertRepo) ListUnresolvedByInventory(inventoryID string) ([]*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + `
		FROM stock_alerts
		WHERE inventory_id = $1 AND NOT is_resolved
		ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list unresolved alerts: %w", err)
	}
	defer rows.Close()
	return collectAlerts(rows)
}

// MarkResolved persiste el cierre de una alerta (is_resolved, resolved_at, resolved_by).
func (r *StockAlertRepo) MarkResolved(alert *entity.StockAlert) error {
	query := `
		UPDATE stock_alerts
		SET is_resolved = $2, resolved_at = $3, resolved_by = $4
		WHERE id = $1`

	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.IsResolved, alert.ResolvedAt, nullStr(alert.ResolvedBy))
	if err != nil {
		return fmt.Errorf("resolve stock alert: %w", err)
	}
	return nil
}

// ListByProduct devuelve las alertas de un producto, opcionalmente filtradas
// por estado de resolución. isResolved nil = todas.
func (r *StockAlertRepo) ListByProduct(ctx context.Context, productID string, isResolved *bool) ([]*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE product_id = $1`
	args := []any{productID}
	if isResolved != nil {
		query += ` AND is_resolved = $2`
		args = append(args, *isResolved)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts by product: %w", err)
	}
	defer rows.Close()
	return collectAlerts(rows)
}

// List devuelve una página de alertas globales, más reciente primero.
func (r *StockAlertRepo) List(ctx context.Context, isResolved *bool, limit, offset int) ([]*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts`
	args := []any{}
	argPos := 1
	if isResolved != nil {
		query += fmt.Sprintf(` WHERE is_resolved = $%d`, argPos)
		args = append(args, *isResolved)
		argPos++
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	return collectAlerts(rows)
}

func collectAlerts(rows pgx.Rows) ([]*entity.StockAlert, error) {
	alerts := make([]*entity.StockAlert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alert rows: %w", err)
	}
	return alerts, nil
}

func scanAlert(row pgx.Row) (*entity.StockAlert, error) {
	var a entity.StockAlert
	var message, resolvedBy *string

	err := row.Scan(
		&a.ID, &a.InventoryID, &a.ProductID, &a.AlertType, &a.ThresholdValue,
		&a.CurrentValue, &message, &a.Priority, &a.IsResolved,
		&a.ResolvedAt, &resolvedBy, &a.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan stock alert: %w", err)
	}
	if message != nil {
		a.Message = *message
	}
	if resolvedBy != nil {
		a.ResolvedBy = *resolvedBy
	}
	return &a, nil
}

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// Ensure InventoryRepo implements repository.InventoryRepository.
var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo es la implementación PostgreSQL de InventoryRepository.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el repositorio sobre un pool o una tx.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, product_id, current_stock, reserved_stock, available_stock,
	       min_stock_level, max_stock_level, reorder_point, reorder_quantity,
	       location, bin_location, cost_price, last_restocked, last_counted,
	       is_active, created_at, updated_at`

// Columnas permitidas para ORDER BY en listados.
var inventorySortColumns = map[string]string{
	"product_id":      "product_id",
	"current_stock":   "current_stock",
	"reserved_stock":  "reserved_stock",
	"available_stock": "available_stock",
	"min_stock_level": "min_stock_level",
	"max_stock_level": "max_stock_level",
	"reorder_point":   "reorder_point",
	"location":        "location",
	"last_restocked":  "last_restocked",
	"created_at":      "created_at",
	"updated_at":      "updated_at",
}

// Create inserta un registro de inventario.
// Devuelve ErrAlreadyExists si el product_id ya tiene registro.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, current_stock, reserved_stock, available_stock,
		                       min_stock_level, max_stock_level, reorder_point, reorder_quantity,
		                       location, bin_location, cost_price, last_restocked, last_counted,
		                       is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.CurrentStock, inv.ReservedStock, inv.AvailableStock,
		inv.MinStockLevel, inv.MaxStockLevel, inv.ReorderPoint, inv.ReorderQuantity,
		nullStr(inv.Location), nullStr(inv.BinLocation), inv.CostPrice,
		inv.LastRestocked, inv.LastCounted,
		inv.IsActive, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByProductID busca el registro por product_id. Devuelve (nil, nil) si no existe.
func (r *InventoryRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID))
}

// GetByProductIDForUpdate igual que GetByProductID pero bloquea la fila
// (SELECT ... FOR UPDATE). Solo tiene sentido dentro de una transacción.
func (r *InventoryRepo) GetByProductIDForUpdate(productID string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID))
}

// Update persiste todos los campos mutables del registro.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET
			current_stock = $2, reserved_stock = $3, available_stock = $4,
			min_stock_level = $5, max_stock_level = $6, reorder_point = $7, reorder_quantity = $8,
			location = $9, bin_location = $10, cost_price = $11,
			last_restocked = $12, last_counted = $13, is_active = $14, updated_at = $15
		WHERE id = $1`

	tag, err := r.q.Exec(context.Background(), query,
		inv.ID,
		inv.CurrentStock, inv.ReservedStock, inv.AvailableStock,
		inv.MinStockLevel, inv.MaxStockLevel, inv.ReorderPoint, inv.ReorderQuantity,
		nullStr(inv.Location), nullStr(inv.BinLocation), inv.CostPrice,
		inv.LastRestocked, inv.LastCounted, inv.IsActive, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve una página de registros activos con el total de la consulta
// (sin paginar). Los filtros son conjuntivos; solo se aplican los no-cero.
func (r *InventoryRepo) List(ctx context.Context, filter repository.InventoryFilter, sort repository.InventorySort, limit, offset int) ([]*entity.Inventory, int, error) {
	where := []string{"is_active = TRUE"}
	args := []any{}
	argPos := 1

	if len(filter.ProductIDs) > 0 {
		where = append(where, fmt.Sprintf("product_id = ANY($%d)", argPos))
		args = append(args, filter.ProductIDs)
		argPos++
	}
	if filter.Location != "" {
		where = append(where, fmt.Sprintf("location ILIKE $%d", argPos))
		args = append(args, "%"+filter.Location+"%")
		argPos++
	}
	if filter.LowStockOnly {
		where = append(where, "current_stock <= min_stock_level")
	}
	if filter.OutOfStockOnly {
		where = append(where, "current_stock <= 0")
	}
	if filter.MinStock != nil {
		where = append(where, fmt.Sprintf("current_stock >= $%d", argPos))
		args = append(args, *filter.MinStock)
		argPos++
	}
	if filter.MaxStock != nil {
		where = append(where, fmt.Sprintf("current_stock <= $%d", argPos))
		args = append(args, *filter.MaxStock)
		argPos++
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM inventory WHERE ` + whereClause
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}

	column, ok := inventorySortColumns[sort.Column]
	if !ok {
		column = "product_id"
	}
	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}
	orderBy := column + " " + direction
	if column != "product_id" {
		// Desempate determinista para paginación estable.
		orderBy += ", product_id ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM inventory WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		inventoryColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Inventory, 0)
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate inventory rows: %w", err)
	}
	return items, total, nil
}

func (r *InventoryRepo) scanOne(row pgx.Row) (*entity.Inventory, error) {
	inv, err := scanInventory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

// scanInventory lee una fila en el orden de inventoryColumns.
func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	var location, binLocation *string

	err := row.Scan(
		&inv.ID, &inv.ProductID, &inv.CurrentStock, &inv.ReservedStock, &inv.AvailableStock,
		&inv.MinStockLevel, &inv.MaxStockLevel, &inv.ReorderPoint, &inv.ReorderQuantity,
		&location, &binLocation, &inv.CostPrice, &inv.LastRestocked, &inv.LastCounted,
		&inv.IsActive, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan inventory: %w", err)
	}
	if location != nil {
		inv.Location = *location
	}
	if binLocation != nil {
		inv.BinLocation = *binLocation
	}
	return &inv, nil
}

// nullStr convierte "" a NULL para columnas de texto opcionales.
func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	dominv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// QueryUseCase lecturas del ledger: listados filtrados/paginados/ordenados,
// detalle por producto, historial de movimientos y alertas. Nunca muta.
// available_stock se recalcula en cada fila devuelta en vez de confiar en el
// valor persistido (defensa contra rutas que hayan omitido el recálculo).
type QueryUseCase struct {
	invRepo   repository.InventoryRepository
	movRepo   repository.StockMovementRepository
	alertRepo repository.StockAlertRepository
}

// NewQueryUseCase construye el caso de uso de lecturas.
func NewQueryUseCase(
	invRepo repository.InventoryRepository,
	movRepo repository.StockMovementRepository,
	alertRepo repository.StockAlertRepository,
) *QueryUseCase {
	return &QueryUseCase{invRepo: invRepo, movRepo: movRepo, alertRepo: alertRepo}
}

// GetByProduct devuelve el registro de inventario de un producto.
func (uc *QueryUseCase) GetByProduct(ctx context.Context, productID string) (*entity.Inventory, error) {
	inv, err := uc.invRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	inv.AvailableStock = dominv.AvailableStock(inv.CurrentStock, inv.ReservedStock)
	return inv, nil
}

// List lista inventario con filtros conjuntivos, orden y paginación skip/limit.
func (uc *QueryUseCase) List(ctx context.Context, q dto.ListInventoryQuery) (*dto.InventoryListResponse, error) {
	q.DefaultPage(50, 500)
	filter := repository.InventoryFilter{
		ProductIDs:     q.ProductIDs,
		Location:       q.Location,
		LowStockOnly:   q.LowStockOnly,
		OutOfStockOnly: q.OutOfStockOnly,
		MinStock:       q.MinStock,
		MaxStock:       q.MaxStock,
	}
	sort := repository.InventorySort{
		Column: q.SortBy,
		Desc:   strings.EqualFold(q.SortOrder, "desc"),
	}
	items, total, err := uc.invRepo.List(ctx, filter, sort, q.Limit, q.Skip)
	if err != nil {
		return nil, err
	}
	resp := &dto.InventoryListResponse{
		Items: make([]dto.InventoryResponse, 0, len(items)),
		Total: total,
		Skip:  q.Skip,
		Limit: q.Limit,
	}
	for _, inv := range items {
		inv.AvailableStock = dominv.AvailableStock(inv.CurrentStock, inv.ReservedStock)
		resp.Items = append(resp.Items, ToInventoryResponse(inv))
	}
	return resp, nil
}

// LowStock atajo: items en o por debajo de su nivel mínimo, los más bajos primero.
func (uc *QueryUseCase) LowStock(ctx context.Context, limit int) (*dto.InventoryListResponse, error) {
	return uc.List(ctx, dto.ListInventoryQuery{
		LowStockOnly: true,
		SortBy:       "current_stock",
		PageRequest:  dto.PageRequest{Limit: limit},
	})
}

// OutOfStock atajo: items agotados, los de reposición más antigua primero.
func (uc *QueryUseCase) OutOfStock(ctx context.Context, limit int) (*dto.InventoryListResponse, error) {
	return uc.List(ctx, dto.ListInventoryQuery{
		OutOfStockOnly: true,
		SortBy:         "last_restocked",
		PageRequest:    dto.PageRequest{Limit: limit},
	})
}

// ListMovements historial de movimientos de un producto, más recientes primero.
// Exige que el registro de inventario exista.
func (uc *QueryUseCase) ListMovements(ctx context.Context, productID string, page dto.PageRequest) ([]*entity.StockMovement, error) {
	inv, err := uc.invRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage(100, 500)
	return uc.movRepo.ListByProduct(ctx, productID, page.Limit, page.Skip)
}

// ListProductAlerts alertas de un producto con filtro opcional por resolución.
func (uc *QueryUseCase) ListProductAlerts(ctx context.Context, productID string, isResolved *bool) ([]*entity.StockAlert, error) {
	return uc.alertRepo.ListByProduct(ctx, productID, isResolved)
}

package inventory_test

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: store compartido + repos + TxRunner con rollback por snapshot.
// Emulan la semántica transaccional real: si el callback falla, el estado queda
// exactamente como antes (sin mutación parcial, sin movimiento, sin alerta).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	inventories map[string]*entity.Inventory // key: product_id
	movements   []*entity.StockMovement
	nextMovID   int64
	alerts      map[string]*entity.StockAlert // key: alert id
}

func newMemStore() *memStore {
	return &memStore{
		inventories: map[string]*entity.Inventory{},
		alerts:      map[string]*entity.StockAlert{},
		nextMovID:   1,
	}
}

func cloneInventory(inv *entity.Inventory) *entity.Inventory {
	cp := *inv
	if inv.CostPrice != nil {
		d := *inv.CostPrice
		cp.CostPrice = &d
	}
	if inv.LastRestocked != nil {
		ts := *inv.LastRestocked
		cp.LastRestocked = &ts
	}
	if inv.LastCounted != nil {
		ts := *inv.LastCounted
		cp.LastCounted = &ts
	}
	return &cp
}

func cloneAlert(a *entity.StockAlert) *entity.StockAlert {
	cp := *a
	if a.ResolvedAt != nil {
		ts := *a.ResolvedAt
		cp.ResolvedAt = &ts
	}
	return &cp
}

func cloneMovement(m *entity.StockMovement) *entity.StockMovement {
	cp := *m
	if m.CostPrice != nil {
		d := *m.CostPrice
		cp.CostPrice = &d
	}
	if m.ExpiryDate != nil {
		ts := *m.ExpiryDate
		cp.ExpiryDate = &ts
	}
	return &cp
}

func (s *memStore) snapshot() *memStore {
	snap := newMemStore()
	snap.nextMovID = s.nextMovID
	for k, v := range s.inventories {
		snap.inventories[k] = cloneInventory(v)
	}
	for k, v := range s.alerts {
		snap.alerts[k] = cloneAlert(v)
	}
	for _, m := range s.movements {
		snap.movements = append(snap.movements, cloneMovement(m))
	}
	return snap
}

func (s *memStore) restore(snap *memStore) {
	s.inventories = snap.inventories
	s.alerts = snap.alerts
	s.movements = snap.movements
	s.nextMovID = snap.nextMovID
}

// ── InventoryRepository ──

type fakeInventoryRepo struct{ s *memStore }

var _ repository.InventoryRepository = (*fakeInventoryRepo)(nil)

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	if _, ok := r.s.inventories[inv.ProductID]; ok {
		return domain.ErrAlreadyExists
	}
	r.s.inventories[inv.ProductID] = cloneInventory(inv)
	return nil
}

func (r *fakeInventoryRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	inv, ok := r.s.inventories[productID]
	if !ok {
		return nil, nil
	}
	return cloneInventory(inv), nil
}

func (r *fakeInventoryRepo) GetByProductIDForUpdate(productID string) (*entity.Inventory, error) {
	return r.GetByProductID(productID)
}

func (r *fakeInventoryRepo) Update(inv *entity.Inventory) error {
	if _, ok := r.s.inventories[inv.ProductID]; !ok {
		return domain.ErrNotFound
	}
	r.s.inventories[inv.ProductID] = cloneInventory(inv)
	return nil
}

func (r *fakeInventoryRepo) List(ctx context.Context, filter repository.InventoryFilter, sortBy repository.InventorySort, limit, offset int) ([]*entity.Inventory, int, error) {
	var items []*entity.Inventory
	for _, inv := range r.s.inventories {
		if !inv.IsActive {
			continue
		}
		if filter.LowStockOnly && inv.CurrentStock > inv.MinStockLevel {
			continue
		}
		if filter.OutOfStockOnly && inv.CurrentStock > 0 {
			continue
		}
		if filter.MinStock != nil && inv.CurrentStock < *filter.MinStock {
			continue
		}
		if filter.MaxStock != nil && inv.CurrentStock > *filter.MaxStock {
			continue
		}
		if len(filter.ProductIDs) > 0 {
			found := false
			for _, id := range filter.ProductIDs {
				if id == inv.ProductID {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		items = append(items, cloneInventory(inv))
	}
	sort.Slice(items, func(i, j int) bool {
		var less bool
		switch sortBy.Column {
		case "current_stock":
			if items[i].CurrentStock != items[j].CurrentStock {
				less = items[i].CurrentStock < items[j].CurrentStock
			} else {
				less = items[i].ProductID < items[j].ProductID
			}
		default:
			less = items[i].ProductID < items[j].ProductID
		}
		if sortBy.Desc {
			return !less
		}
		return less
	})
	total := len(items)
	if offset >= len(items) {
		return nil, total, nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, total, nil
}

// ── StockMovementRepository ──

type fakeMovementRepo struct{ s *memStore }

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	r.s.movements = append(r.s.movements, cloneMovement(m))
	return nil
}

func (r *fakeMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	// Más reciente primero (los fakes insertan en orden, basta con invertir).
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ProductID == productID {
			out = append(out, cloneMovement(r.s.movements[i]))
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── StockAlertRepository ──

type fakeAlertRepo struct{ s *memStore }

var _ repository.StockAlertRepository = (*fakeAlertRepo)(nil)

func (r *fakeAlertRepo) Create(a *entity.StockAlert) error {
	r.s.alerts[a.ID] = cloneAlert(a)
	return nil
}

func (r *fakeAlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	a, ok := r.s.alerts[id]
	if !ok {
		return nil, nil
	}
	return cloneAlert(a), nil
}

func (r *fakeAlertRepo) ListUnresolvedByInventory(inventoryID string) ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.s.alerts {
		if a.InventoryID == inventoryID && !a.IsResolved {
			out = append(out, cloneAlert(a))
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) MarkResolved(a *entity.StockAlert) error {
	stored, ok := r.s.alerts[a.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.IsResolved = a.IsResolved
	stored.ResolvedBy = a.ResolvedBy
	if a.ResolvedAt != nil {
		ts := *a.ResolvedAt
		stored.ResolvedAt = &ts
	}
	return nil
}

func (r *fakeAlertRepo) ListByProduct(ctx context.Context, productID string, isResolved *bool) ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.s.alerts {
		if a.ProductID != productID {
			continue
		}
		if isResolved != nil && a.IsResolved != *isResolved {
			continue
		}
		out = append(out, cloneAlert(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeAlertRepo) List(ctx context.Context, isResolved *bool, limit, offset int) ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.s.alerts {
		if isResolved != nil && a.IsResolved != *isResolved {
			continue
		}
		out = append(out, cloneAlert(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── TxRunner ──

// fakeTxRunner imita la atomicidad real: toma un snapshot del store antes del
// callback y lo restaura si el callback devuelve error.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.StockMovementRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeInventoryRepo{s: r.s}, &fakeMovementRepo{s: r.s}, &fakeAlertRepo{s: r.s})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// ── Helpers comunes ──

func openAlerts(s *memStore, productID, alertType string) []*entity.StockAlert {
	var out []*entity.StockAlert
	for _, a := range s.alerts {
		if a.ProductID == productID && a.AlertType == alertType && !a.IsResolved {
			out = append(out, cloneAlert(a))
		}
	}
	return out
}

func movementsFor(s *memStore, productID string) []*entity.StockMovement {
	var out []*entity.StockMovement
	for _, m := range s.movements {
		if m.ProductID == productID {
			out = append(out, cloneMovement(m))
		}
	}
	return out
}

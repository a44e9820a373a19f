package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

func newEngineFixture(t *testing.T) (*fakeAlertRepo, *entity.Inventory) {
	t.Helper()
	store := newMemStore()
	inv := &entity.Inventory{
		ID:            "inv-1",
		ProductID:     "SKU-001",
		CurrentStock:  50,
		MinStockLevel: 10,
		IsActive:      true,
	}
	store.inventories[inv.ProductID] = inv
	return &fakeAlertRepo{s: store}, inv
}

func TestReconcileAlerts_EsIdempotente(t *testing.T) {
	alertRepo, inv := newEngineFixture(t)
	inv.CurrentStock = 0
	now := time.Now()

	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))

	// Tres pasadas sobre el mismo estado: una sola alerta abierta.
	open := openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeOutOfStock)
	assert.Len(t, open, 1, "la reconciliación repetida no duplica alertas")
}

func TestReconcileAlerts_LowYOutSonExcluyentes(t *testing.T) {
	alertRepo, inv := newEngineFixture(t)
	inv.CurrentStock = 0
	now := time.Now()

	// Agotado: solo OUT_OF_STOCK, aunque 0 <= min también.
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	assert.Len(t, openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeOutOfStock), 1)
	assert.Empty(t, openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock))
}

func TestReconcileAlerts_TransicionAgotadoABajoStock(t *testing.T) {
	alertRepo, inv := newEngineFixture(t)
	now := time.Now()

	inv.CurrentStock = 0
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))

	// Reponer a 5 (> 0 pero <= min 10): OUT_OF_STOCK se resuelve, LOW_STOCK se abre.
	inv.CurrentStock = 5
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))

	assert.Empty(t, openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeOutOfStock))
	low := openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock)
	require.Len(t, low, 1)
	assert.Equal(t, 10, low[0].ThresholdValue)
	assert.Equal(t, 5, low[0].CurrentValue)
}

func TestReconcileAlerts_RecuperacionResuelveTodo(t *testing.T) {
	alertRepo, inv := newEngineFixture(t)
	now := time.Now()

	inv.CurrentStock = 5
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	require.Len(t, openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock), 1)

	inv.CurrentStock = 40
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))

	assert.Empty(t, openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock))
	assert.Empty(t, openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeOutOfStock))

	// La alerta resuelta queda con timestamp, no se borra.
	for _, a := range alertRepo.s.alerts {
		assert.True(t, a.IsResolved)
		assert.NotNil(t, a.ResolvedAt)
	}
}

func TestReconcileAlerts_AlertaAbiertaSigueAbiertaSiCondicionPersiste(t *testing.T) {
	alertRepo, inv := newEngineFixture(t)
	now := time.Now()

	inv.CurrentStock = 5
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	first := openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock)
	require.Len(t, first, 1)

	// Baja más pero sigue bajo-stock: la MISMA alerta sigue abierta, no se reemplaza.
	inv.CurrentStock = 2
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	second := openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución manual (AlertUseCase)
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertResolve_Manual(t *testing.T) {
	alertRepo, inv := newEngineFixture(t)
	now := time.Now()
	inv.CurrentStock = 5
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	open := openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock)
	require.Len(t, open, 1)

	uc := inventory.NewAlertUseCase(alertRepo)
	resolved, err := uc.Resolve(context.Background(), open[0].ID, "user-admin")
	require.NoError(t, err)

	assert.True(t, resolved.IsResolved)
	assert.Equal(t, "user-admin", resolved.ResolvedBy)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.Empty(t, openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock))
}

func TestAlertResolve_ManualNoReverificaCondicion(t *testing.T) {
	// Resolver a mano con la condición vigente es válido; la siguiente
	// reconciliación la vuelve a levantar como alerta nueva.
	alertRepo, inv := newEngineFixture(t)
	now := time.Now()
	inv.CurrentStock = 5
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	open := openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock)
	require.Len(t, open, 1)

	uc := inventory.NewAlertUseCase(alertRepo)
	_, err := uc.Resolve(context.Background(), open[0].ID, "user-admin")
	require.NoError(t, err)

	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now.Add(time.Minute)))
	reopened := openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeLowStock)
	require.Len(t, reopened, 1)
	assert.NotEqual(t, open[0].ID, reopened[0].ID, "se levanta una alerta nueva, no se reabre la resuelta")
}

func TestAlertResolve_YaResueltaEsNoOp(t *testing.T) {
	alertRepo, inv := newEngineFixture(t)
	now := time.Now()
	inv.CurrentStock = 0
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	open := openAlerts(alertRepo.s, "SKU-001", entity.AlertTypeOutOfStock)
	require.Len(t, open, 1)

	uc := inventory.NewAlertUseCase(alertRepo)
	first, err := uc.Resolve(context.Background(), open[0].ID, "user-a")
	require.NoError(t, err)

	second, err := uc.Resolve(context.Background(), open[0].ID, "user-b")
	require.NoError(t, err)
	assert.Equal(t, first.ResolvedBy, second.ResolvedBy, "resolver dos veces no cambia resolved_by")
}

func TestAlertResolve_NoEncontrada(t *testing.T) {
	store := newMemStore()
	uc := inventory.NewAlertUseCase(&fakeAlertRepo{s: store})
	_, err := uc.Resolve(context.Background(), "no-existe", "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAlertList_FiltraPorResolucion(t *testing.T) {
	alertRepo, inv := newEngineFixture(t)
	now := time.Now()

	inv.CurrentStock = 0
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now))
	inv.CurrentStock = 40
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now.Add(time.Second)))
	inv.CurrentStock = 5
	require.NoError(t, inventory.ReconcileAlerts(alertRepo, inv, now.Add(2*time.Second)))

	uc := inventory.NewAlertUseCase(alertRepo)

	unresolved := false
	open, err := uc.List(context.Background(), &unresolved, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, entity.AlertTypeLowStock, open[0].AlertType)

	resolved := true
	closed, err := uc.List(context.Background(), &resolved, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, entity.AlertTypeOutOfStock, closed[0].AlertType)

	all, err := uc.List(context.Background(), nil, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

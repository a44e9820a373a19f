package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// AlertUseCase listado global y resolución manual de alertas.
type AlertUseCase struct {
	alertRepo repository.StockAlertRepository
}

// NewAlertUseCase construye el caso de uso de alertas.
func NewAlertUseCase(alertRepo repository.StockAlertRepository) *AlertUseCase {
	return &AlertUseCase{alertRepo: alertRepo}
}

// List alertas globales, más recientes primero, con filtro opcional por resolución.
func (uc *AlertUseCase) List(ctx context.Context, isResolved *bool, page dto.PageRequest) ([]*entity.StockAlert, error) {
	page.DefaultPage(100, 500)
	return uc.alertRepo.List(ctx, isResolved, page.Limit, page.Skip)
}

// Resolve marca una alerta como resuelta manualmente, sin re-verificar la
// condición: si la condición sigue vigente, la siguiente reconciliación la
// volverá a levantar. Independiente del motor de alertas.
func (uc *AlertUseCase) Resolve(ctx context.Context, alertID, resolvedBy string) (*entity.StockAlert, error) {
	alert, err := uc.alertRepo.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if alert.IsResolved {
		return alert, nil
	}
	now := time.Now()
	alert.IsResolved = true
	alert.ResolvedAt = &now
	alert.ResolvedBy = resolvedBy
	if err := uc.alertRepo.MarkResolved(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

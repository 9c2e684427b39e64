// Package alerts genera avisos de stock bajo y de vencimiento próximo a
// partir del estado actual de los lotes. Lo ejecuta el scheduler de forma
// periódica; también puede dispararse manualmente.
package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/metrics"
	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

// UseCase escanea lotes y escribe notificaciones globales.
type UseCase struct {
	stockRepo        repository.StockRepository
	notificationRepo repository.NotificationRepository
	thresholds       metrics.Thresholds
	expiryWindowDays int
}

// NewUseCase construye el escáner de alertas.
func NewUseCase(
	stockRepo repository.StockRepository,
	notificationRepo repository.NotificationRepository,
	thresholds metrics.Thresholds,
	expiryWindowDays int,
) *UseCase {
	return &UseCase{
		stockRepo:        stockRepo,
		notificationRepo: notificationRepo,
		thresholds:       thresholds,
		expiryWindowDays: expiryWindowDays,
	}
}

// Run ejecuta un escaneo completo y devuelve cuántos avisos se generaron por
// stock bajo y por vencimiento.
func (uc *UseCase) Run(ctx context.Context) (lowStock, expiring int, err error) {
	lows, err := uc.stockRepo.ListBelowMinimum()
	if err != nil {
		return 0, 0, err
	}
	for _, stock := range lows {
		status := metrics.StockLevelStatus(stock.Quantity, stock.MinimumStockLevel, uc.thresholds)
		notifType := "warning"
		if status == metrics.StatusLow {
			notifType = "alert"
		}
		n := &entity.Notification{
			ID:    uuid.New().String(),
			Title: "Stock bajo",
			Message: fmt.Sprintf("El lote %s tiene %s kg, por debajo del mínimo %s kg",
				stock.BatchNumber, stock.Quantity.String(), stock.MinimumStockLevel.String()),
			Type:      notifType,
			CreatedAt: time.Now(),
		}
		if err := uc.notificationRepo.Create(n); err != nil {
			return lowStock, expiring, err
		}
		lowStock++
	}

	deadline := time.Now().AddDate(0, 0, uc.expiryWindowDays)
	soon, err := uc.stockRepo.ListExpiringBefore(deadline)
	if err != nil {
		return lowStock, 0, err
	}
	for _, stock := range soon {
		n := &entity.Notification{
			ID:    uuid.New().String(),
			Title: "Vencimiento próximo",
			Message: fmt.Sprintf("El lote %s (%s kg) vence el %s",
				stock.BatchNumber, stock.Quantity.String(), stock.ExpiryDate.Format("2006-01-02")),
			Type:      "alert",
			CreatedAt: time.Now(),
		}
		if err := uc.notificationRepo.Create(n); err != nil {
			return lowStock, expiring, err
		}
		expiring++
	}
	return lowStock, expiring, nil
}

const defaultUnreadLimit = 20

// ListUnread devuelve los avisos no leídos más recientes.
func (uc *UseCase) ListUnread(ctx context.Context, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultUnreadLimit
	}
	return uc.notificationRepo.ListUnread(limit)
}

package alerts_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/rice-stock-api/internal/application/alerts"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/metrics"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubStockRepo struct {
	below    []*entity.Stock
	expiring []*entity.Stock
}

func (r *stubStockRepo) GetByID(string) (*entity.Stock, error)        { return nil, nil }
func (r *stubStockRepo) GetForUpdate(string) (*entity.Stock, error)   { return nil, nil }
func (r *stubStockRepo) Create(*entity.Stock) error                   { return nil }
func (r *stubStockRepo) UpdateQuantity(string, decimal.Decimal) error { return nil }
func (r *stubStockRepo) FindForUpdateByWarehouseVariety(string, string) (*entity.Stock, error) {
	return nil, nil
}
func (r *stubStockRepo) List(string, string, int, int) ([]*entity.Stock, error) { return nil, nil }
func (r *stubStockRepo) SumQuantityByWarehouse(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *stubStockRepo) SumValueByWarehouse(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *stubStockRepo) ListBelowMinimum() ([]*entity.Stock, error) { return r.below, nil }
func (r *stubStockRepo) ListExpiringBefore(time.Time) ([]*entity.Stock, error) {
	return r.expiring, nil
}

type stubNotificationRepo struct {
	created []*entity.Notification
}

func (r *stubNotificationRepo) Create(n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *stubNotificationRepo) ListUnread(int) ([]*entity.Notification, error) {
	return r.created, nil
}

func TestRun_GeneraAvisos(t *testing.T) {
	expiry := time.Now().AddDate(0, 0, 10)
	stocks := &stubStockRepo{
		below: []*entity.Stock{
			// 10 de 100 = 10% -> crítico
			{ID: "s1", BatchNumber: "L-001", Quantity: dec("10"), MinimumStockLevel: dec("100")},
			// 40 de 100 = 40% -> advertencia
			{ID: "s2", BatchNumber: "L-002", Quantity: dec("40"), MinimumStockLevel: dec("100")},
		},
		expiring: []*entity.Stock{
			{ID: "s3", BatchNumber: "L-003", Quantity: dec("500"), ExpiryDate: &expiry},
		},
	}
	notifications := &stubNotificationRepo{}
	uc := alerts.NewUseCase(stocks, notifications,
		metrics.Thresholds{Low: dec("25"), Medium: dec("50")}, 30)

	lowStock, expiring, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, lowStock)
	assert.Equal(t, 1, expiring)
	require.Len(t, notifications.created, 3)

	assert.Equal(t, "alert", notifications.created[0].Type, "nivel crítico genera alert")
	assert.Equal(t, "warning", notifications.created[1].Type, "nivel medio genera warning")
	assert.Equal(t, "Vencimiento próximo", notifications.created[2].Title)
	assert.Equal(t, "alert", notifications.created[2].Type)
}

func TestListUnread(t *testing.T) {
	notifications := &stubNotificationRepo{created: []*entity.Notification{
		{ID: "n1", Title: "Stock bajo", Type: "alert"},
		{ID: "n2", Title: "Vencimiento próximo", Type: "alert"},
	}}
	uc := alerts.NewUseCase(&stubStockRepo{}, notifications,
		metrics.Thresholds{Low: dec("25"), Medium: dec("50")}, 30)

	list, err := uc.ListUnread(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Stock bajo", list[0].Title)
}

func TestRun_SinHallazgos(t *testing.T) {
	notifications := &stubNotificationRepo{}
	uc := alerts.NewUseCase(&stubStockRepo{}, notifications,
		metrics.Thresholds{Low: dec("25"), Medium: dec("50")}, 30)

	lowStock, expiring, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, lowStock)
	assert.Zero(t, expiring)
	assert.Empty(t, notifications.created)
}

package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
	"github.com/tu-usuario/rice-stock-api/internal/domain"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/metrics"
)

func newQueryFixture(store *memStore) *ledger.QueryUseCase {
	warehouses := &fakeWarehouseRepo{items: map[string]*entity.Warehouse{
		testWarehouseA: {ID: testWarehouseA, Name: "Bodega Central", Capacity: dec("1000"), Status: "active"},
	}}
	varieties := &fakeVarietyRepo{items: map[string]*entity.Variety{
		testVarietyID: {ID: testVarietyID, Name: "Jazmín", Type: "blanco"},
	}}
	suppliers := &fakeSupplierRepo{items: map[string]*entity.Supplier{}}
	return ledger.NewQueryUseCase(
		&fakeStockRepo{s: store},
		&fakeTransactionRepo{s: store},
		&fakePurchaseRepo{s: store},
		&fakeSaleRepo{s: store},
		&fakeTransferRepo{s: store},
		&fakeAdjustmentRepo{s: store},
		warehouses, varieties, suppliers,
		metrics.Thresholds{Low: dec("25"), Medium: dec("50")},
	)
}

func TestGetWarehouseMetrics(t *testing.T) {
	store := newMemStore()
	seedStock(store, "250", "2.00")
	uc := newQueryFixture(store)

	m, err := uc.GetWarehouseMetrics(context.Background(), testWarehouseA)
	require.NoError(t, err)

	assert.True(t, m.Occupied.Equal(dec("250")))
	assert.True(t, m.Utilization.Equal(dec("25")), "250 de 1000 kg = 25 por ciento")
	assert.True(t, m.TotalValue.Equal(dec("500")))
}

func TestGetWarehouseMetrics_SobreCapacidad(t *testing.T) {
	store := newMemStore()
	seedStock(store, "1500", "2.00")
	uc := newQueryFixture(store)

	m, err := uc.GetWarehouseMetrics(context.Background(), testWarehouseA)
	require.NoError(t, err)

	assert.True(t, m.Utilization.Equal(dec("150")), "la utilización real no se recorta")
	assert.True(t, m.UtilizationDisplay.Equal(dec("100")), "la de presentación sí")
}

func TestGetWarehouseMetrics_BodegaInexistente(t *testing.T) {
	uc := newQueryFixture(newMemStore())

	_, err := uc.GetWarehouseMetrics(context.Background(), "wh-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListTransactions_TipoDesconocido(t *testing.T) {
	uc := newQueryFixture(newMemStore())

	_, err := uc.ListTransactions(context.Background(), "devolucion", "", nil, nil, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockLedger_LoteInexistente(t *testing.T) {
	uc := newQueryFixture(newMemStore())

	_, err := uc.StockLedger(context.Background(), "stock-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfitReport(t *testing.T) {
	store := newMemStore()
	store.sales = append(store.sales,
		&entity.Sale{ID: "s1", ProfitLoss: dec("20"), SaleDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
		&entity.Sale{ID: "s2", ProfitLoss: dec("-5"), SaleDate: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)},
		&entity.Sale{ID: "s3", ProfitLoss: dec("100"), SaleDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
	)
	uc := newQueryFixture(store)

	profit, err := uc.ProfitReport(context.Background(),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, profit.Equal(dec("15")), "suma solo el profit congelado del rango")
}

func TestProfitReport_RangoInvalido(t *testing.T) {
	uc := newQueryFixture(newMemStore())

	_, err := uc.ProfitReport(context.Background(),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockStatus(t *testing.T) {
	store := newMemStore()
	uc := newQueryFixture(store)

	stock := &entity.Stock{Quantity: dec("20"), MinimumStockLevel: dec("100")}
	assert.Equal(t, metrics.StatusLow, uc.StockStatus(stock))

	stock.Quantity = dec("40")
	assert.Equal(t, metrics.StatusMedium, uc.StockStatus(stock))

	stock.Quantity = dec("80")
	assert.Equal(t, metrics.StatusSafe, uc.StockStatus(stock))
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rice-stock-api/internal/application/alerts"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/metrics"
	apphttp "github.com/tu-usuario/rice-stock-api/internal/interfaces/http"
)

const (
	testActor     = "00000000-0000-0000-0000-000000000001"
	testWarehouse = "wh-central"
	testVariety   = "var-jazmin"
	testStock     = "stock-0001"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: un solo lote mutable, sin transaccionalidad real. Los tests
// de atomicidad viven junto al motor; aquí solo se prueba la capa HTTP.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	stock         *entity.Stock
	transactions  []*entity.Transaction
	purchases     []*entity.Purchase
	sales         []*entity.Sale
	notifications []*entity.Notification
}

type fxStockRepo struct{ f *fixture }

func (r *fxStockRepo) GetByID(id string) (*entity.Stock, error) {
	if r.f.stock != nil && r.f.stock.ID == id {
		cp := *r.f.stock
		return &cp, nil
	}
	return nil, nil
}
func (r *fxStockRepo) GetForUpdate(id string) (*entity.Stock, error) { return r.GetByID(id) }
func (r *fxStockRepo) FindForUpdateByWarehouseVariety(string, string) (*entity.Stock, error) {
	return nil, nil
}
func (r *fxStockRepo) Create(s *entity.Stock) error {
	cp := *s
	r.f.stock = &cp
	return nil
}
func (r *fxStockRepo) UpdateQuantity(id string, q decimal.Decimal) error {
	r.f.stock.Quantity = q
	return nil
}
func (r *fxStockRepo) List(string, string, int, int) ([]*entity.Stock, error) {
	if r.f.stock == nil {
		return nil, nil
	}
	cp := *r.f.stock
	return []*entity.Stock{&cp}, nil
}
func (r *fxStockRepo) SumQuantityByWarehouse(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *fxStockRepo) SumValueByWarehouse(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *fxStockRepo) ListBelowMinimum() ([]*entity.Stock, error)            { return nil, nil }
func (r *fxStockRepo) ListExpiringBefore(time.Time) ([]*entity.Stock, error) { return nil, nil }

type fxTransactionRepo struct{ f *fixture }

func (r *fxTransactionRepo) Create(t *entity.Transaction) error {
	r.f.transactions = append(r.f.transactions, t)
	return nil
}
func (r *fxTransactionRepo) List(string, string, *time.Time, *time.Time, int, int) ([]*entity.Transaction, error) {
	return r.f.transactions, nil
}
func (r *fxTransactionRepo) ListByStock(string) ([]*entity.Transaction, error) {
	return r.f.transactions, nil
}

type fxPurchaseRepo struct{ f *fixture }

func (r *fxPurchaseRepo) Create(p *entity.Purchase) error {
	r.f.purchases = append(r.f.purchases, p)
	return nil
}
func (r *fxPurchaseRepo) ListRecent(int) ([]*entity.Purchase, error) { return r.f.purchases, nil }

type fxSaleRepo struct{ f *fixture }

func (r *fxSaleRepo) Create(s *entity.Sale) error {
	r.f.sales = append(r.f.sales, s)
	return nil
}
func (r *fxSaleRepo) ListRecent(int) ([]*entity.Sale, error) { return r.f.sales, nil }
func (r *fxSaleRepo) SumProfitLoss(time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fxTransferRepo struct{}

func (r *fxTransferRepo) Create(*entity.Transfer) error              { return nil }
func (r *fxTransferRepo) ListRecent(int) ([]*entity.Transfer, error) { return nil, nil }

type fxAdjustmentRepo struct{}

func (r *fxAdjustmentRepo) Create(*entity.Adjustment) error              { return nil }
func (r *fxAdjustmentRepo) ListRecent(int) ([]*entity.Adjustment, error) { return nil, nil }

type fxNotificationRepo struct{ f *fixture }

func (r *fxNotificationRepo) Create(n *entity.Notification) error {
	r.f.notifications = append(r.f.notifications, n)
	return nil
}
func (r *fxNotificationRepo) ListUnread(limit int) ([]*entity.Notification, error) {
	list := r.f.notifications
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

type fxTxRunner struct{ f *fixture }

func (r *fxTxRunner) Run(_ context.Context, fn func(repos ledger.Repos) error) error {
	return fn(ledger.Repos{
		Stocks:       &fxStockRepo{f: r.f},
		Transactions: &fxTransactionRepo{f: r.f},
		Purchases:    &fxPurchaseRepo{f: r.f},
		Sales:        &fxSaleRepo{f: r.f},
		Transfers:    &fxTransferRepo{},
		Adjustments:  &fxAdjustmentRepo{},
	})
}

type fxWarehouseRepo struct{ items map[string]*entity.Warehouse }

func (r *fxWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.items[id], nil }
func (r *fxWarehouseRepo) List() ([]*entity.Warehouse, error)           { return nil, nil }

type fxVarietyRepo struct{ items map[string]*entity.Variety }

func (r *fxVarietyRepo) GetByID(id string) (*entity.Variety, error) { return r.items[id], nil }
func (r *fxVarietyRepo) List() ([]*entity.Variety, error)           { return nil, nil }

type fxSupplierRepo struct{}

func (r *fxSupplierRepo) GetByID(string) (*entity.Supplier, error) { return nil, nil }
func (r *fxSupplierRepo) List() ([]*entity.Supplier, error)        { return nil, nil }

func buildTestApp(f *fixture) *fiber.App {
	warehouses := &fxWarehouseRepo{items: map[string]*entity.Warehouse{
		testWarehouse: {ID: testWarehouse, Name: "Bodega Central", Status: "active"},
	}}
	varieties := &fxVarietyRepo{items: map[string]*entity.Variety{
		testVariety: {ID: testVariety, Name: "Jazmín", Type: "blanco"},
	}}
	ledgerUC := ledger.NewUseCase(&fxTxRunner{f: f}, warehouses, varieties, &fxSupplierRepo{})
	queryUC := ledger.NewQueryUseCase(
		&fxStockRepo{f: f}, &fxTransactionRepo{f: f}, &fxPurchaseRepo{f: f},
		&fxSaleRepo{f: f}, &fxTransferRepo{}, &fxAdjustmentRepo{},
		warehouses, varieties, &fxSupplierRepo{},
		metrics.Thresholds{Low: dec("25"), Medium: dec("50")},
	)
	alertsUC := alerts.NewUseCase(&fxStockRepo{f: f}, &fxNotificationRepo{f: f},
		metrics.Thresholds{Low: dec("25"), Medium: dec("50")}, 30)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{LedgerUC: ledgerUC, QueryUC: queryUC, AlertsUC: alertsUC})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, withActor bool) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if withActor {
		req.Header.Set("X-User-ID", testActor)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRegisterPurchase_Creado(t *testing.T) {
	f := &fixture{}
	app := buildTestApp(f)

	resp := doJSON(t, app, http.MethodPost, "/api/ledger/purchases", fiber.Map{
		"warehouse_id":  testWarehouse,
		"variety_id":    testVariety,
		"quantity":      "100",
		"unit_price":    "2.50",
		"batch_number":  "LOTE-2026-001",
		"purchase_date": "2026-08-01",
	}, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["id"], "la respuesta trae el id del registro creado")

	require.NotNil(t, f.stock)
	assert.True(t, f.stock.Quantity.Equal(dec("100")))
	require.Len(t, f.purchases, 1)
	assert.True(t, f.purchases[0].TotalAmount.Equal(dec("250")))
}

func TestRegisterPurchase_SinActor(t *testing.T) {
	app := buildTestApp(&fixture{})

	resp := doJSON(t, app, http.MethodPost, "/api/ledger/purchases", fiber.Map{}, false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin X-User-ID la mutación no se acepta")
}

func TestRegisterPurchase_FechaInvalida(t *testing.T) {
	app := buildTestApp(&fixture{})

	resp := doJSON(t, app, http.MethodPost, "/api/ledger/purchases", fiber.Map{
		"warehouse_id":  testWarehouse,
		"variety_id":    testVariety,
		"quantity":      "100",
		"unit_price":    "2.50",
		"batch_number":  "LOTE-2026-001",
		"purchase_date": "01/08/2026",
	}, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterPurchase_BodegaInexistente(t *testing.T) {
	app := buildTestApp(&fixture{})

	resp := doJSON(t, app, http.MethodPost, "/api/ledger/purchases", fiber.Map{
		"warehouse_id":  "wh-fantasma",
		"variety_id":    testVariety,
		"quantity":      "100",
		"unit_price":    "2.50",
		"batch_number":  "LOTE-2026-001",
		"purchase_date": "2026-08-01",
	}, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func seedFixtureStock(f *fixture, quantity string) {
	now := time.Now()
	f.stock = &entity.Stock{
		ID:          testStock,
		WarehouseID: testWarehouse,
		VarietyID:   testVariety,
		Quantity:    dec(quantity),
		UnitPrice:   dec("2.50"),
		BatchNumber: "LOTE-2026-001",
		CreatedAt:   now,
		LastUpdated: now,
	}
}

func TestRegisterSale_StockInsuficiente(t *testing.T) {
	f := &fixture{}
	seedFixtureStock(f, "10")
	app := buildTestApp(f)

	resp := doJSON(t, app, http.MethodPost, "/api/ledger/sales", fiber.Map{
		"stock_id":       testStock,
		"customer_name":  "Distribuidora Sur",
		"quantity":       "11",
		"sale_price":     "3.00",
		"sale_date":      "2026-08-15",
		"invoice_number": "FV-001",
	}, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode,
		"stock insuficiente se reporta como conflicto")
}

func TestRegisterSale_Creado(t *testing.T) {
	f := &fixture{}
	seedFixtureStock(f, "100")
	app := buildTestApp(f)

	resp := doJSON(t, app, http.MethodPost, "/api/ledger/sales", fiber.Map{
		"stock_id":       testStock,
		"customer_name":  "Distribuidora Sur",
		"quantity":       "40",
		"sale_price":     "3.00",
		"sale_date":      "2026-08-15",
		"invoice_number": "FV-001",
	}, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, f.stock.Quantity.Equal(dec("60")))
	require.Len(t, f.sales, 1)
	assert.True(t, f.sales[0].ProfitLoss.Equal(dec("20")))
}

func TestRegisterAdjustment_CruzandoCero(t *testing.T) {
	f := &fixture{}
	seedFixtureStock(f, "10")
	app := buildTestApp(f)

	resp := doJSON(t, app, http.MethodPost, "/api/ledger/adjustments", fiber.Map{
		"stock_id": testStock,
		"type":     "decrease",
		"quantity": "11",
		"reason":   "merma",
	}, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"un ajuste que deja negativo el lote se rechaza")
}

func TestGetStock_ConMetricas(t *testing.T) {
	f := &fixture{}
	seedFixtureStock(f, "20")
	f.stock.MinimumStockLevel = dec("100")
	app := buildTestApp(f)

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/"+testStock, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "low", body["status"], "20 de 100 kg mínimos es nivel crítico")
	totalValue, err := decimal.NewFromString(body["total_value"].(string))
	require.NoError(t, err)
	assert.True(t, totalValue.Equal(dec("50")), "20 * 2.50")
}

func TestGetStock_Inexistente(t *testing.T) {
	app := buildTestApp(&fixture{})

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/stock-fantasma", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListNotifications(t *testing.T) {
	f := &fixture{notifications: []*entity.Notification{
		{ID: "n1", Title: "Stock bajo", Message: "El lote LOTE-2026-001 tiene 10 kg", Type: "alert", CreatedAt: time.Now()},
		{ID: "n2", Title: "Vencimiento próximo", Message: "El lote LOTE-2026-002 vence pronto", Type: "alert", CreatedAt: time.Now()},
	}}
	app := buildTestApp(f)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total         int              `json:"total"`
		Notifications []map[string]any `json:"notifications"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Notifications, 2)
	assert.Equal(t, "Stock bajo", body.Notifications[0]["title"])
	assert.Equal(t, "alert", body.Notifications[0]["type"])
	assert.Equal(t, false, body.Notifications[0]["is_read"])
}

func TestHealth(t *testing.T) {
	app := buildTestApp(&fixture{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

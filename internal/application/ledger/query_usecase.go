package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rice-stock-api/internal/domain"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/metrics"
	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// WarehouseMetrics agrupa las métricas derivadas de una bodega. Se calculan
// en cada lectura a partir del estado actual; nada se cachea.
type WarehouseMetrics struct {
	Warehouse          *entity.Warehouse
	Occupied           decimal.Decimal // kilogramos almacenados
	Utilization        decimal.Decimal // porcentaje sin recortar
	UtilizationDisplay decimal.Decimal // recortado a [0, 100] para mostrar
	TotalValue         decimal.Decimal // SUM(cantidad * costo unitario)
}

// QueryUseCase expone la superficie de lectura del motor: balances, libro de
// transacciones, métricas derivadas y datos maestros.
type QueryUseCase struct {
	stockRepo       repository.StockRepository
	transactionRepo repository.TransactionRepository
	purchaseRepo    repository.PurchaseRepository
	saleRepo        repository.SaleRepository
	transferRepo    repository.TransferRepository
	adjustmentRepo  repository.AdjustmentRepository
	warehouseRepo   repository.WarehouseRepository
	varietyRepo     repository.VarietyRepository
	supplierRepo    repository.SupplierRepository
	thresholds      metrics.Thresholds
}

// NewQueryUseCase construye la superficie de lectura. Los umbrales de nivel de
// stock vienen de configuración.
func NewQueryUseCase(
	stockRepo repository.StockRepository,
	transactionRepo repository.TransactionRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	transferRepo repository.TransferRepository,
	adjustmentRepo repository.AdjustmentRepository,
	warehouseRepo repository.WarehouseRepository,
	varietyRepo repository.VarietyRepository,
	supplierRepo repository.SupplierRepository,
	thresholds metrics.Thresholds,
) *QueryUseCase {
	return &QueryUseCase{
		stockRepo:       stockRepo,
		transactionRepo: transactionRepo,
		purchaseRepo:    purchaseRepo,
		saleRepo:        saleRepo,
		transferRepo:    transferRepo,
		adjustmentRepo:  adjustmentRepo,
		warehouseRepo:   warehouseRepo,
		varietyRepo:     varietyRepo,
		supplierRepo:    supplierRepo,
		thresholds:      thresholds,
	}
}

// GetStock obtiene un lote por id.
func (uc *QueryUseCase) GetStock(ctx context.Context, id string) (*entity.Stock, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return stock, nil
}

// ListStocks lista lotes filtrando opcionalmente por bodega y/o variedad.
func (uc *QueryUseCase) ListStocks(ctx context.Context, warehouseID, varietyID string, limit, offset int) ([]*entity.Stock, error) {
	limit, offset = normalizePage(limit, offset)
	return uc.stockRepo.List(warehouseID, varietyID, limit, offset)
}

// StockStatus clasifica el nivel de un lote con los umbrales configurados.
func (uc *QueryUseCase) StockStatus(stock *entity.Stock) string {
	return metrics.StockLevelStatus(stock.Quantity, stock.MinimumStockLevel, uc.thresholds)
}

// ListTransactions lista entradas del libro filtradas por tipo, lote y rango
// de fechas. Un tipo desconocido se rechaza.
func (uc *QueryUseCase) ListTransactions(ctx context.Context, txType, stockID string, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	switch txType {
	case "", entity.TransactionTypePurchase, entity.TransactionTypeSale,
		entity.TransactionTypeTransfer, entity.TransactionTypeAdjustment:
	default:
		return nil, domain.ErrInvalidInput
	}
	limit, offset = normalizePage(limit, offset)
	return uc.transactionRepo.List(txType, stockID, from, to, limit, offset)
}

// StockLedger devuelve todas las entradas del libro de un lote, en orden de
// creación. La suma de sus deltas debe cuadrar con la cantidad del lote.
func (uc *QueryUseCase) StockLedger(ctx context.Context, stockID string) ([]*entity.Transaction, error) {
	if _, err := uc.GetStock(ctx, stockID); err != nil {
		return nil, err
	}
	return uc.transactionRepo.ListByStock(stockID)
}

// GetWarehouseMetrics calcula ocupación, utilización y valor total de una
// bodega a partir de sus lotes actuales.
func (uc *QueryUseCase) GetWarehouseMetrics(ctx context.Context, warehouseID string) (*WarehouseMetrics, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	occupied, err := uc.stockRepo.SumQuantityByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	totalValue, err := uc.stockRepo.SumValueByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	utilization := metrics.Utilization(occupied, warehouse.Capacity)
	return &WarehouseMetrics{
		Warehouse:          warehouse,
		Occupied:           occupied,
		Utilization:        utilization,
		UtilizationDisplay: metrics.ClampPercent(utilization),
		TotalValue:         totalValue,
	}, nil
}

// ProfitReport suma el profit/loss almacenado de las ventas del rango. No
// recalcula contra costos actuales: respeta el snapshot tomado en cada venta.
func (uc *QueryUseCase) ProfitReport(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return uc.saleRepo.SumProfitLoss(from, to)
}

// ListWarehouses lista las bodegas (dato maestro).
func (uc *QueryUseCase) ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	return uc.warehouseRepo.List()
}

// ListVarieties lista las variedades de arroz (dato maestro).
func (uc *QueryUseCase) ListVarieties(ctx context.Context) ([]*entity.Variety, error) {
	return uc.varietyRepo.List()
}

// ListSuppliers lista los proveedores (dato maestro).
func (uc *QueryUseCase) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List()
}

// ListRecentPurchases / ListRecentSales / ListRecentTransfers /
// ListRecentAdjustments devuelven la actividad reciente por tipo de evento.
func (uc *QueryUseCase) ListRecentPurchases(ctx context.Context, limit int) ([]*entity.Purchase, error) {
	limit, _ = normalizePage(limit, 0)
	return uc.purchaseRepo.ListRecent(limit)
}

func (uc *QueryUseCase) ListRecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	limit, _ = normalizePage(limit, 0)
	return uc.saleRepo.ListRecent(limit)
}

func (uc *QueryUseCase) ListRecentTransfers(ctx context.Context, limit int) ([]*entity.Transfer, error) {
	limit, _ = normalizePage(limit, 0)
	return uc.transferRepo.ListRecent(limit)
}

func (uc *QueryUseCase) ListRecentAdjustments(ctx context.Context, limit int) ([]*entity.Adjustment, error) {
	limit, _ = normalizePage(limit, 0)
	return uc.adjustmentRepo.ListRecent(limit)
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

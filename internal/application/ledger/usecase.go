package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rice-stock-api/internal/domain"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/metrics"
	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

// UseCase es el motor del libro de inventario: aplica las cuatro mutaciones
// (compra, venta, traslado, ajuste) de forma transaccional con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. Cada mutación deja balance, registro
// de negocio y entrada(s) del libro en una sola unidad atómica.
type UseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	varietyRepo   repository.VarietyRepository
	supplierRepo  repository.SupplierRepository
}

// NewUseCase construye el motor del libro.
func NewUseCase(
	txRunner TxRunner,
	warehouseRepo repository.WarehouseRepository,
	varietyRepo repository.VarietyRepository,
	supplierRepo repository.SupplierRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
		varietyRepo:   varietyRepo,
		supplierRepo:  supplierRepo,
	}
}

// PurchaseInput entrada para registrar una compra. ActorID es la identidad
// autenticada que atribuye la mutación: siempre explícita, nunca ambiente.
type PurchaseInput struct {
	ActorID           string
	WarehouseID       string
	VarietyID         string
	SupplierID        string // opcional
	Quantity          decimal.Decimal
	UnitPrice         decimal.Decimal
	BatchNumber       string
	InvoiceNumber     string
	PurchaseDate      time.Time
	ExpiryDate        *time.Time
	MinimumStockLevel decimal.Decimal
	Notes             string
}

// SaleInput entrada para registrar una venta sobre un lote.
type SaleInput struct {
	ActorID       string
	StockID       string
	CustomerName  string
	Quantity      decimal.Decimal
	SalePrice     decimal.Decimal
	SaleDate      time.Time
	InvoiceNumber string
	PaymentMethod string
	Notes         string
}

// TransferInput entrada para trasladar cantidad de un lote a otra bodega.
type TransferInput struct {
	ActorID       string
	StockID       string
	ToWarehouseID string
	Quantity      decimal.Decimal
	Reason        string
}

// AdjustmentInput entrada para un ajuste manual de cantidad.
type AdjustmentInput struct {
	ActorID  string
	StockID  string
	Type     string // increase | decrease
	Quantity decimal.Decimal
	Reason   string
}

// RegisterPurchase crea un lote nuevo (las compras nunca se fusionan con lotes
// existentes: cada compra es su propio batch), el registro de compra con
// total = cantidad * precio, y una entrada del libro con delta positivo.
func (uc *UseCase) RegisterPurchase(ctx context.Context, in PurchaseInput) (string, error) {
	if in.ActorID == "" || in.WarehouseID == "" || in.VarietyID == "" {
		return "", domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) || !in.UnitPrice.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}
	if in.BatchNumber == "" || in.PurchaseDate.IsZero() {
		return "", domain.ErrInvalidInput
	}

	// Validar referencias maestras antes de abrir la transacción
	if wh, err := uc.warehouseRepo.GetByID(in.WarehouseID); err != nil {
		return "", err
	} else if wh == nil {
		return "", domain.ErrNotFound
	}
	if v, err := uc.varietyRepo.GetByID(in.VarietyID); err != nil {
		return "", err
	} else if v == nil {
		return "", domain.ErrNotFound
	}
	if in.SupplierID != "" {
		if sp, err := uc.supplierRepo.GetByID(in.SupplierID); err != nil {
			return "", err
		} else if sp == nil {
			return "", domain.ErrNotFound
		}
	}

	now := time.Now()
	stockID := uuid.New().String()
	purchaseID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		stock := &entity.Stock{
			ID:                stockID,
			WarehouseID:       in.WarehouseID,
			VarietyID:         in.VarietyID,
			Quantity:          in.Quantity,
			UnitPrice:         in.UnitPrice,
			BatchNumber:       in.BatchNumber,
			ExpiryDate:        in.ExpiryDate,
			MinimumStockLevel: in.MinimumStockLevel,
			Notes:             in.Notes,
			CreatedBy:         in.ActorID,
			CreatedAt:         now,
			LastUpdated:       now,
		}
		if err := repos.Stocks.Create(stock); err != nil {
			return err
		}
		purchase := &entity.Purchase{
			ID:            purchaseID,
			StockID:       stockID,
			SupplierID:    in.SupplierID,
			InvoiceNumber: in.InvoiceNumber,
			PurchaseDate:  in.PurchaseDate,
			TotalAmount:   in.Quantity.Mul(in.UnitPrice),
			CreatedBy:     in.ActorID,
			CreatedAt:     now,
		}
		if err := repos.Purchases.Create(purchase); err != nil {
			return err
		}
		return repos.Transactions.Create(&entity.Transaction{
			ID:          uuid.New().String(),
			Type:        entity.TransactionTypePurchase,
			ReferenceID: purchaseID,
			StockID:     stockID,
			Quantity:    in.Quantity,
			Notes:       in.Notes,
			CreatedBy:   in.ActorID,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return "", err
	}
	return purchaseID, nil
}

// RegisterSale bloquea el lote, verifica stock suficiente, descuenta la
// cantidad y congela el profit/loss contra el costo del lote en este instante.
// Vender exactamente todo el lote es válido: el lote queda en cero y persiste.
func (uc *UseCase) RegisterSale(ctx context.Context, in SaleInput) (string, error) {
	if in.ActorID == "" || in.StockID == "" || in.CustomerName == "" || in.InvoiceNumber == "" {
		return "", domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) || !in.SalePrice.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}
	if in.SaleDate.IsZero() {
		return "", domain.ErrInvalidInput
	}

	now := time.Now()
	saleID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		stock, err := repos.Stocks.GetForUpdate(in.StockID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if stock.Quantity.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		if err := repos.Stocks.UpdateQuantity(stock.ID, stock.Quantity.Sub(in.Quantity)); err != nil {
			return err
		}
		sale := &entity.Sale{
			ID:            saleID,
			StockID:       stock.ID,
			CustomerName:  in.CustomerName,
			Quantity:      in.Quantity,
			SalePrice:     in.SalePrice,
			TotalAmount:   in.Quantity.Mul(in.SalePrice),
			ProfitLoss:    metrics.ProfitLoss(in.SalePrice, stock.UnitPrice, in.Quantity),
			SaleDate:      in.SaleDate,
			InvoiceNumber: in.InvoiceNumber,
			PaymentMethod: in.PaymentMethod,
			Notes:         in.Notes,
			CreatedBy:     in.ActorID,
			CreatedAt:     now,
		}
		if err := repos.Sales.Create(sale); err != nil {
			return err
		}
		return repos.Transactions.Create(&entity.Transaction{
			ID:          uuid.New().String(),
			Type:        entity.TransactionTypeSale,
			ReferenceID: saleID,
			StockID:     stock.ID,
			Quantity:    in.Quantity.Neg(),
			Notes:       in.Notes,
			CreatedBy:   in.ActorID,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return "", err
	}
	return saleID, nil
}

// RegisterTransfer descuenta del lote origen y suma en la bodega destino:
// sobre un lote existente de la misma variedad (conservando el costo del
// destino) o creando uno nuevo con el costo del origen y batch "-TR".
// Emite dos entradas del libro, una por cada lote afectado, para que la suma
// de deltas cuadre también en el destino.
func (uc *UseCase) RegisterTransfer(ctx context.Context, in TransferInput) (string, error) {
	if in.ActorID == "" || in.StockID == "" || in.ToWarehouseID == "" {
		return "", domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}

	if wh, err := uc.warehouseRepo.GetByID(in.ToWarehouseID); err != nil {
		return "", err
	} else if wh == nil {
		return "", domain.ErrNotFound
	}

	now := time.Now()
	transferID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		source, err := repos.Stocks.GetForUpdate(in.StockID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
		if source.WarehouseID == in.ToWarehouseID {
			return domain.ErrInvalidInput
		}
		if source.Quantity.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		if err := repos.Stocks.UpdateQuantity(source.ID, source.Quantity.Sub(in.Quantity)); err != nil {
			return err
		}

		dest, err := repos.Stocks.FindForUpdateByWarehouseVariety(in.ToWarehouseID, source.VarietyID)
		if err != nil {
			return err
		}
		if dest != nil {
			// Fusión: el lote destino conserva su propio costo unitario.
			if err := repos.Stocks.UpdateQuantity(dest.ID, dest.Quantity.Add(in.Quantity)); err != nil {
				return err
			}
		} else {
			dest = &entity.Stock{
				ID:          uuid.New().String(),
				WarehouseID: in.ToWarehouseID,
				VarietyID:   source.VarietyID,
				Quantity:    in.Quantity,
				UnitPrice:   source.UnitPrice,
				BatchNumber: source.BatchNumber + "-TR",
				CreatedBy:   in.ActorID,
				CreatedAt:   now,
				LastUpdated: now,
			}
			if err := repos.Stocks.Create(dest); err != nil {
				return err
			}
		}

		transfer := &entity.Transfer{
			ID:              transferID,
			StockID:         source.ID,
			FromWarehouseID: source.WarehouseID,
			ToWarehouseID:   in.ToWarehouseID,
			Quantity:        in.Quantity,
			Reason:          in.Reason,
			CreatedBy:       in.ActorID,
			CreatedAt:       now,
		}
		if err := repos.Transfers.Create(transfer); err != nil {
			return err
		}
		// Entrada de salida en el origen
		if err := repos.Transactions.Create(&entity.Transaction{
			ID:          uuid.New().String(),
			Type:        entity.TransactionTypeTransfer,
			ReferenceID: transferID,
			StockID:     source.ID,
			Quantity:    in.Quantity.Neg(),
			Notes:       in.Reason,
			CreatedBy:   in.ActorID,
			CreatedAt:   now,
		}); err != nil {
			return err
		}
		// Entrada de llegada en el destino
		return repos.Transactions.Create(&entity.Transaction{
			ID:          uuid.New().String(),
			Type:        entity.TransactionTypeTransfer,
			ReferenceID: transferID,
			StockID:     dest.ID,
			Quantity:    in.Quantity,
			Notes:       in.Reason,
			CreatedBy:   in.ActorID,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return "", err
	}
	return transferID, nil
}

// RegisterAdjustment aplica una corrección manual con motivo obligatorio.
// Una disminución que cruce cero se rechaza antes de escribir nada.
func (uc *UseCase) RegisterAdjustment(ctx context.Context, in AdjustmentInput) (string, error) {
	if in.ActorID == "" || in.StockID == "" || in.Reason == "" {
		return "", domain.ErrInvalidInput
	}
	if in.Type != entity.AdjustmentTypeIncrease && in.Type != entity.AdjustmentTypeDecrease {
		return "", domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}

	now := time.Now()
	adjustmentID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		stock, err := repos.Stocks.GetForUpdate(in.StockID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		delta := in.Quantity
		if in.Type == entity.AdjustmentTypeDecrease {
			delta = in.Quantity.Neg()
		}
		newQuantity := stock.Quantity.Add(delta)
		if newQuantity.IsNegative() {
			return domain.ErrNegativeStock
		}
		if err := repos.Stocks.UpdateQuantity(stock.ID, newQuantity); err != nil {
			return err
		}
		adjustment := &entity.Adjustment{
			ID:               adjustmentID,
			StockID:          stock.ID,
			Type:             in.Type,
			Quantity:         in.Quantity,
			PreviousQuantity: stock.Quantity,
			NewQuantity:      newQuantity,
			Reason:           in.Reason,
			CreatedBy:        in.ActorID,
			CreatedAt:        now,
		}
		if err := repos.Adjustments.Create(adjustment); err != nil {
			return err
		}
		return repos.Transactions.Create(&entity.Transaction{
			ID:          uuid.New().String(),
			Type:        entity.TransactionTypeAdjustment,
			ReferenceID: adjustmentID,
			StockID:     stock.ID,
			Quantity:    delta,
			Notes:       in.Reason,
			CreatedBy:   in.ActorID,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return "", err
	}
	return adjustmentID, nil
}

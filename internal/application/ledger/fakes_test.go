package ledger_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
)

// memStore estado en memoria compartido por los repos fake. stockOrder guarda
// el orden de creación de lotes, que en PostgreSQL da el ORDER BY created_at.
type memStore struct {
	stocks       map[string]*entity.Stock
	stockOrder   []string
	transactions []*entity.Transaction
	purchases    []*entity.Purchase
	sales        []*entity.Sale
	transfers    []*entity.Transfer
	adjustments  []*entity.Adjustment
}

func newMemStore() *memStore {
	return &memStore{stocks: map[string]*entity.Stock{}}
}

func (s *memStore) clone() *memStore {
	c := &memStore{stocks: make(map[string]*entity.Stock, len(s.stocks))}
	for id, st := range s.stocks {
		cp := *st
		c.stocks[id] = &cp
	}
	c.stockOrder = append([]string(nil), s.stockOrder...)
	c.transactions = append([]*entity.Transaction(nil), s.transactions...)
	c.purchases = append([]*entity.Purchase(nil), s.purchases...)
	c.sales = append([]*entity.Sale(nil), s.sales...)
	c.transfers = append([]*entity.Transfer(nil), s.transfers...)
	c.adjustments = append([]*entity.Adjustment(nil), s.adjustments...)
	return c
}

// fakeTxRunner simula Commit/Rollback: ante un error de fn restaura el
// snapshot previo, igual que un ROLLBACK descarta las escrituras. El mutex
// serializa los callbacks concurrentes, como el bloqueo de fila (SELECT FOR
// UPDATE) serializa mutaciones sobre un mismo lote.
type fakeTxRunner struct {
	mu    sync.Mutex
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repos ledger.Repos) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := r.store.clone()
	repos := ledger.Repos{
		Stocks:       &fakeStockRepo{s: r.store},
		Transactions: &fakeTransactionRepo{s: r.store},
		Purchases:    &fakePurchaseRepo{s: r.store},
		Sales:        &fakeSaleRepo{s: r.store},
		Transfers:    &fakeTransferRepo{s: r.store},
		Adjustments:  &fakeAdjustmentRepo{s: r.store},
	}
	if err := fn(repos); err != nil {
		*r.store = *snapshot
		return err
	}
	return nil
}

type fakeStockRepo struct {
	s *memStore
}

func (r *fakeStockRepo) GetByID(id string) (*entity.Stock, error) {
	st, ok := r.s.stocks[id]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *fakeStockRepo) GetForUpdate(id string) (*entity.Stock, error) {
	return r.GetByID(id)
}

func (r *fakeStockRepo) FindForUpdateByWarehouseVariety(warehouseID, varietyID string) (*entity.Stock, error) {
	for _, id := range r.s.stockOrder {
		st := r.s.stocks[id]
		if st.WarehouseID == warehouseID && st.VarietyID == varietyID {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) Create(stock *entity.Stock) error {
	cp := *stock
	r.s.stocks[stock.ID] = &cp
	r.s.stockOrder = append(r.s.stockOrder, stock.ID)
	return nil
}

func (r *fakeStockRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	st := r.s.stocks[id]
	st.Quantity = quantity
	st.LastUpdated = time.Now()
	return nil
}

func (r *fakeStockRepo) List(warehouseID, varietyID string, limit, offset int) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, id := range r.s.stockOrder {
		st := r.s.stocks[id]
		if warehouseID != "" && st.WarehouseID != warehouseID {
			continue
		}
		if varietyID != "" && st.VarietyID != varietyID {
			continue
		}
		cp := *st
		list = append(list, &cp)
	}
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeStockRepo) SumQuantityByWarehouse(warehouseID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, st := range r.s.stocks {
		if st.WarehouseID == warehouseID {
			sum = sum.Add(st.Quantity)
		}
	}
	return sum, nil
}

func (r *fakeStockRepo) SumValueByWarehouse(warehouseID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, st := range r.s.stocks {
		if st.WarehouseID == warehouseID {
			sum = sum.Add(st.Quantity.Mul(st.UnitPrice))
		}
	}
	return sum, nil
}

func (r *fakeStockRepo) ListBelowMinimum() ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, id := range r.s.stockOrder {
		st := r.s.stocks[id]
		if st.MinimumStockLevel.GreaterThan(decimal.Zero) && st.Quantity.LessThan(st.MinimumStockLevel) {
			cp := *st
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeStockRepo) ListExpiringBefore(date time.Time) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, id := range r.s.stockOrder {
		st := r.s.stocks[id]
		if st.ExpiryDate != nil && !st.ExpiryDate.After(date) && st.Quantity.GreaterThan(decimal.Zero) {
			cp := *st
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeTransactionRepo struct {
	s *memStore
}

func (r *fakeTransactionRepo) Create(txn *entity.Transaction) error {
	cp := *txn
	r.s.transactions = append(r.s.transactions, &cp)
	return nil
}

func (r *fakeTransactionRepo) List(txType, stockID string, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for _, t := range r.s.transactions {
		if txType != "" && t.Type != txType {
			continue
		}
		if stockID != "" && t.StockID != stockID {
			continue
		}
		if from != nil && t.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && t.CreatedAt.After(*to) {
			continue
		}
		list = append(list, t)
	}
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeTransactionRepo) ListByStock(stockID string) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for _, t := range r.s.transactions {
		if t.StockID == stockID {
			list = append(list, t)
		}
	}
	return list, nil
}

type fakePurchaseRepo struct {
	s *memStore
}

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	r.s.purchases = append(r.s.purchases, &cp)
	return nil
}

func (r *fakePurchaseRepo) ListRecent(limit int) ([]*entity.Purchase, error) {
	list := append([]*entity.Purchase(nil), r.s.purchases...)
	if limit < len(list) {
		list = list[len(list)-limit:]
	}
	return list, nil
}

type fakeSaleRepo struct {
	s *memStore
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales = append(r.s.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) ListRecent(limit int) ([]*entity.Sale, error) {
	list := append([]*entity.Sale(nil), r.s.sales...)
	if limit < len(list) {
		list = list[len(list)-limit:]
	}
	return list, nil
}

func (r *fakeSaleRepo) SumProfitLoss(from, to time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, s := range r.s.sales {
		if s.SaleDate.Before(from) || s.SaleDate.After(to) {
			continue
		}
		sum = sum.Add(s.ProfitLoss)
	}
	return sum, nil
}

type fakeTransferRepo struct {
	s *memStore
}

func (r *fakeTransferRepo) Create(t *entity.Transfer) error {
	cp := *t
	r.s.transfers = append(r.s.transfers, &cp)
	return nil
}

func (r *fakeTransferRepo) ListRecent(limit int) ([]*entity.Transfer, error) {
	list := append([]*entity.Transfer(nil), r.s.transfers...)
	if limit < len(list) {
		list = list[len(list)-limit:]
	}
	return list, nil
}

type fakeAdjustmentRepo struct {
	s *memStore
}

func (r *fakeAdjustmentRepo) Create(a *entity.Adjustment) error {
	cp := *a
	r.s.adjustments = append(r.s.adjustments, &cp)
	return nil
}

func (r *fakeAdjustmentRepo) ListRecent(limit int) ([]*entity.Adjustment, error) {
	list := append([]*entity.Adjustment(nil), r.s.adjustments...)
	if limit < len(list) {
		list = list[len(list)-limit:]
	}
	return list, nil
}

type fakeWarehouseRepo struct {
	items map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.items[id], nil
}

func (r *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range r.items {
		list = append(list, w)
	}
	return list, nil
}

type fakeVarietyRepo struct {
	items map[string]*entity.Variety
}

func (r *fakeVarietyRepo) GetByID(id string) (*entity.Variety, error) {
	return r.items[id], nil
}

func (r *fakeVarietyRepo) List() ([]*entity.Variety, error) {
	var list []*entity.Variety
	for _, v := range r.items {
		list = append(list, v)
	}
	return list, nil
}

type fakeSupplierRepo struct {
	items map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.items[id], nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	for _, s := range r.items {
		list = append(list, s)
	}
	return list, nil
}

package dto

import "github.com/shopspring/decimal"

// Las fechas viajan como "YYYY-MM-DD"; el handler las parsea.

// RegisterPurchaseRequest body para POST /api/ledger/purchases.
type RegisterPurchaseRequest struct {
	WarehouseID       string          `json:"warehouse_id"`
	VarietyID         string          `json:"variety_id"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	BatchNumber       string          `json:"batch_number"`
	InvoiceNumber     string          `json:"invoice_number"`
	PurchaseDate      string          `json:"purchase_date"`
	ExpiryDate        string          `json:"expiry_date,omitempty"`
	MinimumStockLevel decimal.Decimal `json:"minimum_stock_level,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

// RegisterSaleRequest body para POST /api/ledger/sales.
type RegisterSaleRequest struct {
	StockID       string          `json:"stock_id"`
	CustomerName  string          `json:"customer_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	SaleDate      string          `json:"sale_date"`
	InvoiceNumber string          `json:"invoice_number"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// RegisterTransferRequest body para POST /api/ledger/transfers.
type RegisterTransferRequest struct {
	StockID       string          `json:"stock_id"`
	ToWarehouseID string          `json:"to_warehouse_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Reason        string          `json:"reason,omitempty"`
}

// RegisterAdjustmentRequest body para POST /api/ledger/adjustments.
type RegisterAdjustmentRequest struct {
	StockID  string          `json:"stock_id"`
	Type     string          `json:"type"` // increase | decrease
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
}

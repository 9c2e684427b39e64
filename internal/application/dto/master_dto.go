package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseResponse bodega (dato maestro).
type WarehouseResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location,omitempty"`
	Capacity    decimal.Decimal `json:"capacity"`
	ManagerName string          `json:"manager_name,omitempty"`
	Status      string          `json:"status"`
}

// VarietyResponse variedad de arroz (dato maestro).
type VarietyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// SupplierResponse proveedor (dato maestro).
type SupplierResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	Status        string `json:"status"`
}

// PurchaseResponse compra registrada.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	StockID       string          `json:"stock_id"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleResponse venta registrada con su profit/loss congelado.
type SaleResponse struct {
	ID            string          `json:"id"`
	StockID       string          `json:"stock_id"`
	CustomerName  string          `json:"customer_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ProfitLoss    decimal.Decimal `json:"profit_loss"`
	SaleDate      time.Time       `json:"sale_date"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransferResponse traslado registrado.
type TransferResponse struct {
	ID              string          `json:"id"`
	StockID         string          `json:"stock_id"`
	FromWarehouseID string          `json:"from_warehouse_id"`
	ToWarehouseID   string          `json:"to_warehouse_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	Reason          string          `json:"reason,omitempty"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AdjustmentResponse ajuste registrado con cantidades antes y después.
type AdjustmentResponse struct {
	ID               string          `json:"id"`
	StockID          string          `json:"stock_id"`
	Type             string          `json:"type"`
	Quantity         decimal.Decimal `json:"quantity"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	NewQuantity      decimal.Decimal `json:"new_quantity"`
	Reason           string          `json:"reason"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockResponse lote con sus métricas derivadas (calculadas al leer).
type StockResponse struct {
	ID                string          `json:"id"`
	WarehouseID       string          `json:"warehouse_id"`
	VarietyID         string          `json:"variety_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	BatchNumber       string          `json:"batch_number"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	MinimumStockLevel decimal.Decimal `json:"minimum_stock_level"`
	TotalValue        decimal.Decimal `json:"total_value"`
	Status            string          `json:"status"` // low | medium | safe
	LastUpdated       time.Time       `json:"last_updated"`
}

// TransactionResponse entrada del libro de inventario.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	ReferenceID string          `json:"reference_id"`
	StockID     string          `json:"stock_id"`
	Quantity    decimal.Decimal `json:"quantity"` // delta con signo
	Notes       string          `json:"notes,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// WarehouseMetricsResponse métricas derivadas de una bodega.
type WarehouseMetricsResponse struct {
	WarehouseID        string          `json:"warehouse_id"`
	Name               string          `json:"name"`
	Capacity           decimal.Decimal `json:"capacity"`
	Occupied           decimal.Decimal `json:"occupied"`
	Utilization        decimal.Decimal `json:"utilization"`
	UtilizationDisplay decimal.Decimal `json:"utilization_display"`
	TotalValue         decimal.Decimal `json:"total_value"`
}

// ProfitReportResponse utilidad agregada de un rango de fechas.
type ProfitReportResponse struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	ProfitLoss decimal.Decimal `json:"profit_loss"`
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rice-stock-api/internal/application/dto"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
	"github.com/tu-usuario/rice-stock-api/internal/domain"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/metrics"
)

// StockHandler lecturas de lotes y de su libro.
type StockHandler struct {
	uc *ledger.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *ledger.QueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

func (h *StockHandler) toResponse(s *entity.Stock) dto.StockResponse {
	return dto.StockResponse{
		ID:                s.ID,
		WarehouseID:       s.WarehouseID,
		VarietyID:         s.VarietyID,
		Quantity:          s.Quantity,
		UnitPrice:         s.UnitPrice,
		BatchNumber:       s.BatchNumber,
		ExpiryDate:        s.ExpiryDate,
		MinimumStockLevel: s.MinimumStockLevel,
		TotalValue:        metrics.TotalValue(s.Quantity, s.UnitPrice),
		Status:            h.uc.StockStatus(s),
		LastUpdated:       s.LastUpdated,
	}
}

// GetByID devuelve un lote con sus métricas derivadas.
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	stock, err := h.uc.GetStock(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.toResponse(stock))
}

// List lista lotes filtrando opcionalmente por bodega y/o variedad.
func (h *StockHandler) List(c *fiber.Ctx) error {
	stocks, err := h.uc.ListStocks(c.Context(),
		c.Query("warehouse_id"), c.Query("variety_id"),
		c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, h.toResponse(s))
	}
	return c.JSON(fiber.Map{"total": len(out), "stocks": out})
}

// Ledger devuelve todas las entradas del libro de un lote en orden de creación.
func (h *StockHandler) Ledger(c *fiber.Ctx) error {
	txns, err := h.uc.StockLedger(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, transactionToResponse(t))
	}
	return c.JSON(fiber.Map{"total": len(out), "transactions": out})
}

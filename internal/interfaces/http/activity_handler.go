package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rice-stock-api/internal/application/dto"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
)

// ActivityHandler actividad reciente por tipo de evento, para el dashboard.
type ActivityHandler struct {
	uc *ledger.QueryUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *ledger.QueryUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Recent devuelve los últimos eventos de cada tipo (compras, ventas, traslados,
// ajustes) en un solo payload.
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	ctx := c.Context()

	purchases, err := h.uc.ListRecentPurchases(ctx, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	sales, err := h.uc.ListRecentSales(ctx, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	transfers, err := h.uc.ListRecentTransfers(ctx, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	adjustments, err := h.uc.ListRecentAdjustments(ctx, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	outPurchases := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		outPurchases = append(outPurchases, dto.PurchaseResponse{
			ID:            p.ID,
			StockID:       p.StockID,
			SupplierID:    p.SupplierID,
			InvoiceNumber: p.InvoiceNumber,
			PurchaseDate:  p.PurchaseDate,
			TotalAmount:   p.TotalAmount,
			CreatedBy:     p.CreatedBy,
			CreatedAt:     p.CreatedAt,
		})
	}
	outSales := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		outSales = append(outSales, dto.SaleResponse{
			ID:            s.ID,
			StockID:       s.StockID,
			CustomerName:  s.CustomerName,
			Quantity:      s.Quantity,
			SalePrice:     s.SalePrice,
			TotalAmount:   s.TotalAmount,
			ProfitLoss:    s.ProfitLoss,
			SaleDate:      s.SaleDate,
			InvoiceNumber: s.InvoiceNumber,
			CreatedBy:     s.CreatedBy,
			CreatedAt:     s.CreatedAt,
		})
	}
	outTransfers := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		outTransfers = append(outTransfers, dto.TransferResponse{
			ID:              t.ID,
			StockID:         t.StockID,
			FromWarehouseID: t.FromWarehouseID,
			ToWarehouseID:   t.ToWarehouseID,
			Quantity:        t.Quantity,
			Reason:          t.Reason,
			CreatedBy:       t.CreatedBy,
			CreatedAt:       t.CreatedAt,
		})
	}
	outAdjustments := make([]dto.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		outAdjustments = append(outAdjustments, dto.AdjustmentResponse{
			ID:               a.ID,
			StockID:          a.StockID,
			Type:             a.Type,
			Quantity:         a.Quantity,
			PreviousQuantity: a.PreviousQuantity,
			NewQuantity:      a.NewQuantity,
			Reason:           a.Reason,
			CreatedBy:        a.CreatedBy,
			CreatedAt:        a.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"purchases":   outPurchases,
		"sales":       outSales,
		"transfers":   outTransfers,
		"adjustments": outAdjustments,
	})
}

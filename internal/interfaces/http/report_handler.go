package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rice-stock-api/internal/application/dto"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
	"github.com/tu-usuario/rice-stock-api/internal/domain"
)

// ReportHandler agregados de negocio calculados al momento.
type ReportHandler struct {
	uc *ledger.QueryUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *ledger.QueryUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Profit suma el profit/loss congelado de las ventas del rango [from, to].
func (h *ReportHandler) Profit(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválida (YYYY-MM-DD)"})
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválida (YYYY-MM-DD)"})
	}

	profit, err := h.uc.ProfitReport(c.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ProfitReportResponse{
		From:       c.Query("from"),
		To:         c.Query("to"),
		ProfitLoss: profit,
	})
}

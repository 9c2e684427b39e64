package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rice-stock-api/internal/application/dto"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
	"github.com/tu-usuario/rice-stock-api/internal/domain"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
)

// TransactionHandler lecturas del libro global de movimientos.
type TransactionHandler struct {
	uc *ledger.QueryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.QueryUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func transactionToResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		ReferenceID: t.ReferenceID,
		StockID:     t.StockID,
		Quantity:    t.Quantity,
		Notes:       t.Notes,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
	}
}

// List lista entradas del libro con filtros de tipo, lote y rango de fechas.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		d, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválida (YYYY-MM-DD)"})
		}
		from = &d
	}
	if s := c.Query("to"); s != "" {
		d, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválida (YYYY-MM-DD)"})
		}
		// Incluir el día completo
		d = d.Add(24*time.Hour - time.Nanosecond)
		to = &d
	}

	txns, err := h.uc.ListTransactions(c.Context(),
		c.Query("type"), c.Query("stock_id"), from, to,
		c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de transacción desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, transactionToResponse(t))
	}
	return c.JSON(fiber.Map{"total": len(out), "transactions": out})
}

package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rice-stock-api/internal/application/dto"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
	"github.com/tu-usuario/rice-stock-api/internal/domain"
	"github.com/tu-usuario/rice-stock-api/internal/infrastructure/monitoring"
)

const dateLayout = "2006-01-02"

// LedgerHandler maneja las cuatro mutaciones del libro de inventario.
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// actorID extrae la identidad autenticada que el gateway aguas arriba propaga.
func actorID(c *fiber.Ctx) string {
	return c.Get("X-User-ID")
}

// mutationError traduce errores de dominio a respuestas HTTP y cuenta la
// mutación como rechazada cuando el error es de negocio.
func mutationError(c *fiber.Ctx, operation string, err error) error {
	switch {
	// ErrNegativeStock envuelve ErrInvalidInput; se distingue antes para
	// conservar el código específico.
	case errors.Is(err, domain.ErrNegativeStock):
		monitoring.MutationsRejected.WithLabelValues(operation).Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: "el ajuste dejaría el lote en negativo"})
	case errors.Is(err, domain.ErrInvalidInput):
		monitoring.MutationsRejected.WithLabelValues(operation).Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		monitoring.MutationsRejected.WithLabelValues(operation).Inc()
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		monitoring.MutationsRejected.WithLabelValues(operation).Inc()
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// RegisterPurchase registra una compra: lote nuevo + registro + entrada del libro.
func (h *LedgerHandler) RegisterPurchase(c *fiber.Ctx) error {
	actor := actorID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "falta X-User-ID"})
	}
	var in dto.RegisterPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	purchaseDate, err := parseDate(in.PurchaseDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "purchase_date inválida (YYYY-MM-DD)"})
	}
	var expiry *time.Time
	if in.ExpiryDate != "" {
		d, err := parseDate(in.ExpiryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expiry_date inválida (YYYY-MM-DD)"})
		}
		expiry = &d
	}

	id, err := h.uc.RegisterPurchase(c.Context(), ledger.PurchaseInput{
		ActorID:           actor,
		WarehouseID:       in.WarehouseID,
		VarietyID:         in.VarietyID,
		SupplierID:        in.SupplierID,
		Quantity:          in.Quantity,
		UnitPrice:         in.UnitPrice,
		BatchNumber:       in.BatchNumber,
		InvoiceNumber:     in.InvoiceNumber,
		PurchaseDate:      purchaseDate,
		ExpiryDate:        expiry,
		MinimumStockLevel: in.MinimumStockLevel,
		Notes:             in.Notes,
	})
	if err != nil {
		return mutationError(c, "purchase", err)
	}
	monitoring.MutationsApplied.WithLabelValues("purchase").Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// RegisterSale registra una venta descontando del lote indicado.
func (h *LedgerHandler) RegisterSale(c *fiber.Ctx) error {
	actor := actorID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "falta X-User-ID"})
	}
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	saleDate, err := parseDate(in.SaleDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_date inválida (YYYY-MM-DD)"})
	}

	id, err := h.uc.RegisterSale(c.Context(), ledger.SaleInput{
		ActorID:       actor,
		StockID:       in.StockID,
		CustomerName:  in.CustomerName,
		Quantity:      in.Quantity,
		SalePrice:     in.SalePrice,
		SaleDate:      saleDate,
		InvoiceNumber: in.InvoiceNumber,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	})
	if err != nil {
		return mutationError(c, "sale", err)
	}
	monitoring.MutationsApplied.WithLabelValues("sale").Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// RegisterTransfer mueve cantidad de un lote hacia otra bodega.
func (h *LedgerHandler) RegisterTransfer(c *fiber.Ctx) error {
	actor := actorID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "falta X-User-ID"})
	}
	var in dto.RegisterTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	id, err := h.uc.RegisterTransfer(c.Context(), ledger.TransferInput{
		ActorID:       actor,
		StockID:       in.StockID,
		ToWarehouseID: in.ToWarehouseID,
		Quantity:      in.Quantity,
		Reason:        in.Reason,
	})
	if err != nil {
		return mutationError(c, "transfer", err)
	}
	monitoring.MutationsApplied.WithLabelValues("transfer").Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// RegisterAdjustment aplica una corrección manual con motivo obligatorio.
func (h *LedgerHandler) RegisterAdjustment(c *fiber.Ctx) error {
	actor := actorID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "falta X-User-ID"})
	}
	var in dto.RegisterAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	id, err := h.uc.RegisterAdjustment(c.Context(), ledger.AdjustmentInput{
		ActorID:  actor,
		StockID:  in.StockID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Reason:   in.Reason,
	})
	if err != nil {
		return mutationError(c, "adjustment", err)
	}
	monitoring.MutationsApplied.WithLabelValues("adjustment").Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rice-stock-api/internal/application/dto"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
)

// MasterDataHandler lecturas de variedades y proveedores (datos maestros,
// administrados fuera del motor).
type MasterDataHandler struct {
	uc *ledger.QueryUseCase
}

// NewMasterDataHandler construye el handler.
func NewMasterDataHandler(uc *ledger.QueryUseCase) *MasterDataHandler {
	return &MasterDataHandler{uc: uc}
}

// ListVarieties lista las variedades de arroz.
func (h *MasterDataHandler) ListVarieties(c *fiber.Ctx) error {
	varieties, err := h.uc.ListVarieties(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.VarietyResponse, 0, len(varieties))
	for _, v := range varieties {
		out = append(out, dto.VarietyResponse{
			ID:          v.ID,
			Name:        v.Name,
			Type:        v.Type,
			Description: v.Description,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "varieties": out})
}

// ListSuppliers lista los proveedores.
func (h *MasterDataHandler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.uc.ListSuppliers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.SupplierResponse{
			ID:            s.ID,
			Name:          s.Name,
			ContactPerson: s.ContactPerson,
			Phone:         s.Phone,
			Email:         s.Email,
			Address:       s.Address,
			Status:        s.Status,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "suppliers": out})
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rice-stock-api/internal/application/dto"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
	"github.com/tu-usuario/rice-stock-api/internal/domain"
)

// WarehouseHandler lecturas de bodegas y sus métricas derivadas.
type WarehouseHandler struct {
	uc *ledger.QueryUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *ledger.QueryUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List lista las bodegas.
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	warehouses, err := h.uc.ListWarehouses(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, dto.WarehouseResponse{
			ID:          w.ID,
			Name:        w.Name,
			Location:    w.Location,
			Capacity:    w.Capacity,
			ManagerName: w.ManagerName,
			Status:      w.Status,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "warehouses": out})
}

// Metrics calcula ocupación, utilización y valor total de una bodega.
func (h *WarehouseHandler) Metrics(c *fiber.Ctx) error {
	m, err := h.uc.GetWarehouseMetrics(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.WarehouseMetricsResponse{
		WarehouseID:        m.Warehouse.ID,
		Name:               m.Warehouse.Name,
		Capacity:           m.Warehouse.Capacity,
		Occupied:           m.Occupied,
		Utilization:        m.Utilization,
		UtilizationDisplay: m.UtilizationDisplay,
		TotalValue:         m.TotalValue,
	})
}

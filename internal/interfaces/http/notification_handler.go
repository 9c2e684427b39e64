package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rice-stock-api/internal/application/alerts"
	"github.com/tu-usuario/rice-stock-api/internal/application/dto"
)

// NotificationHandler expone los avisos que escribe el escáner de alertas.
type NotificationHandler struct {
	uc *alerts.UseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *alerts.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListUnread lista los avisos no leídos más recientes.
func (h *NotificationHandler) ListUnread(c *fiber.Ctx) error {
	list, err := h.uc.ListUnread(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "notifications": out})
}

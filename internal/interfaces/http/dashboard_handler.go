package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Empasex/mini-pos-admin/internal/application/analytics"
	"github.com/Empasex/mini-pos-admin/internal/application/dto"
	"github.com/Empasex/mini-pos-admin/internal/infrastructure/posapi"
)

// DashboardHandler maneja el endpoint del panel de control.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs del día y la serie de 7 días.
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	summary, err := h.uc.GetSummary(ctx)
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "DASHBOARD_FAILED", Message: err.Error()})
	}
	return c.JSON(summary)
}

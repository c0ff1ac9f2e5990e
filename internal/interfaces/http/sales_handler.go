package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Empasex/mini-pos-admin/internal/application/dto"
	"github.com/Empasex/mini-pos-admin/internal/application/sales"
	"github.com/Empasex/mini-pos-admin/internal/domain"
	"github.com/Empasex/mini-pos-admin/internal/infrastructure/posapi"
)

// SalesHandler maneja los endpoints del módulo de ventas.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// List devuelve las ventas vigentes agrupadas en ventas lógicas.
// GET /api/sales
func (h *SalesHandler) List(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	groups, err := h.uc.ListGrouped(ctx)
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "SALES_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.NewGroupedSales(groups))
}

// Register registra el carrito como una venta.
// POST /api/sales
func (h *SalesHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body JSON inválido"})
	}

	ctx := posapi.WithToken(c.Context(), GetToken(c))
	if err := h.uc.Register(ctx, req); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SALE", Message: err.Error()})
		}
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "REGISTER_FAILED", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusCreated)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Empasex/mini-pos-admin/internal/application/dto"
	"github.com/Empasex/mini-pos-admin/internal/application/inventory"
	"github.com/Empasex/mini-pos-admin/internal/infrastructure/posapi"
)

// ProductHandler maneja el catálogo de productos (solo lectura).
type ProductHandler struct {
	uc *inventory.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List devuelve el catálogo completo.
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	products, err := h.uc.List(ctx)
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "PRODUCTS_FAILED", Message: err.Error()})
	}
	return c.JSON(products)
}

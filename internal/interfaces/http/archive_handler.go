package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Empasex/mini-pos-admin/internal/application/archive"
	"github.com/Empasex/mini-pos-admin/internal/application/dto"
	"github.com/Empasex/mini-pos-admin/internal/infrastructure/posapi"
)

// ArchiveHandler maneja los endpoints del módulo de archivo histórico.
type ArchiveHandler struct {
	uc *archive.UseCase
}

// NewArchiveHandler construye el handler.
func NewArchiveHandler(uc *archive.UseCase) *ArchiveHandler {
	return &ArchiveHandler{uc: uc}
}

// ListBatches devuelve los lotes archivados.
// GET /api/archive/batches
func (h *ArchiveHandler) ListBatches(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	batches, err := h.uc.ListBatches(ctx)
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "ARCHIVE_FAILED", Message: err.Error()})
	}
	return c.JSON(batches)
}

// BatchDetail devuelve el resumen por producto de un lote.
// GET /api/archive/batches/:id
func (h *ArchiveHandler) BatchDetail(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	details, err := h.uc.BatchDetail(ctx, c.Params("id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "ARCHIVE_FAILED", Message: err.Error()})
	}
	return c.JSON(details)
}

// ExportBatch descarga el detalle de un lote como .xlsx.
// GET /api/archive/batches/:id/export
func (h *ArchiveHandler) ExportBatch(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	batchID := c.Params("id")

	data, err := h.uc.ExportBatch(ctx, batchID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="archive_`+batchID+`.xlsx"`)
	return c.Send(data)
}

// Run dispara una corrida de archivado.
// POST /api/archive/run?batch_size=N
func (h *ArchiveHandler) Run(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	if err := h.uc.Run(ctx, c.QueryInt("batch_size", 0)); err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "ARCHIVE_RUN_FAILED", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// DeleteBatch elimina el resumen de un lote.
// DELETE /api/archive/batches/:id
func (h *ArchiveHandler) DeleteBatch(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	if err := h.uc.Delete(ctx, c.Params("id")); err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "ARCHIVE_DELETE_FAILED", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

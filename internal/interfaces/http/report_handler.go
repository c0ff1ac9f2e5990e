package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Empasex/mini-pos-admin/internal/application/dto"
	"github.com/Empasex/mini-pos-admin/internal/application/reports"
	"github.com/Empasex/mini-pos-admin/internal/domain"
	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/internal/infrastructure/posapi"
)

// ReportHandler maneja los endpoints del módulo de reportes.
type ReportHandler struct {
	controller *reports.Controller
	export     *reports.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(controller *reports.Controller, export *reports.ExportUseCase) *ReportHandler {
	return &ReportHandler{controller: controller, export: export}
}

// filterFromQuery arma el filtro desde la query; los valores fuera de rango
// los corrige Normalize, no se rechazan.
func filterFromQuery(c *fiber.Ctx) entity.ReportFilter {
	return entity.ReportFilter{
		Modo:      c.Query("filtro", entity.FiltroHoy),
		DayRange:  c.QueryInt("dias", 1),
		WeekRange: c.QueryInt("semanas", 1),
	}
}

// Get refresca y devuelve el reporte del filtro pedido.
// GET /api/reports?filtro=hoy|semana|mes&dias=1|7|14|21|28&semanas=1..8
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	snap, err := h.controller.Refresh(ctx, filterFromQuery(c))

	resp := dto.ReportSnapshotDTO{
		Estado: string(snap.State),
		Filtro: dto.ReportFilterDTO{
			Modo:      snap.Filter.Modo,
			DayRange:  snap.Filter.DayRange,
			WeekRange: snap.Filter.WeekRange,
		},
		Rows: dto.NewReportRows(snap.Rows),
	}
	if err != nil {
		resp.Error = err.Error()
		return c.Status(statusFor(err)).JSON(resp)
	}
	return c.JSON(resp)
}

// Export descarga el reporte del filtro pedido.
// GET /api/reports/export?formato=csv|xlsx|pdf&filtro=...&dias=...&semanas=...
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	ctx := posapi.WithToken(c.Context(), GetToken(c))
	formato := c.Query("formato", reports.FormatCSV)

	file, err := h.export.Export(ctx, filterFromQuery(c), formato)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_FORMAT", Message: err.Error(),
			})
		}
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Data)
}

// statusFor mapea errores de dominio a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/pkg/format"
)

// ReportRowDTO una fila del reporte, con los montos en crudo (para gráficos)
// y formateados en moneda (para la tabla).
type ReportRowDTO struct {
	Label    string          `json:"label"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Costos   decimal.Decimal `json:"costos"`
	Ganancia decimal.Decimal `json:"ganancia"`

	IngresosFmt string `json:"ingresos_fmt"`
	CostosFmt   string `json:"costos_fmt"`
	GananciaFmt string `json:"ganancia_fmt"`
}

// ReportSnapshotDTO respuesta de GET /api/reports.
type ReportSnapshotDTO struct {
	Estado string          `json:"estado"` // idle | loading | ready | failed
	Filtro ReportFilterDTO `json:"filtro"`
	Rows   []ReportRowDTO  `json:"rows"`
	Error  string          `json:"error,omitempty"`
}

// ReportFilterDTO eco del filtro ya normalizado.
type ReportFilterDTO struct {
	Modo      string `json:"modo"`
	DayRange  int    `json:"rango_dias,omitempty"`
	WeekRange int    `json:"rango_semanas,omitempty"`
}

// NewReportRows convierte filas de dominio a DTO.
func NewReportRows(rows []entity.ReportRow) []ReportRowDTO {
	out := make([]ReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReportRowDTO{
			Label:       r.Label,
			Ingresos:    r.Ingresos,
			Costos:      r.Costos,
			Ganancia:    r.Ganancia,
			IngresosFmt: format.Currency(r.Ingresos),
			CostosFmt:   format.Currency(r.Costos),
			GananciaFmt: format.Currency(r.Ganancia),
		})
	}
	return out
}

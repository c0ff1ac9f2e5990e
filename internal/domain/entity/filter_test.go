package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
)

func TestReportFilterNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   entity.ReportFilter
		want entity.ReportFilter
	}{
		{
			"válido queda igual",
			entity.ReportFilter{Modo: entity.FiltroSemana, DayRange: 7, WeekRange: 4},
			entity.ReportFilter{Modo: entity.FiltroSemana, DayRange: 7, WeekRange: 4},
		},
		{
			"modo desconocido cae a hoy",
			entity.ReportFilter{Modo: "trimestre", DayRange: 1, WeekRange: 1},
			entity.ReportFilter{Modo: entity.FiltroHoy, DayRange: 1, WeekRange: 1},
		},
		{
			"días fuera del set permitido caen a 1",
			entity.ReportFilter{Modo: entity.FiltroHoy, DayRange: 5, WeekRange: 1},
			entity.ReportFilter{Modo: entity.FiltroHoy, DayRange: 1, WeekRange: 1},
		},
		{
			"semanas se recortan por arriba",
			entity.ReportFilter{Modo: entity.FiltroSemana, DayRange: 1, WeekRange: 99},
			entity.ReportFilter{Modo: entity.FiltroSemana, DayRange: 1, WeekRange: 8},
		},
		{
			"semanas se recortan por abajo",
			entity.ReportFilter{Modo: entity.FiltroSemana, DayRange: 1, WeekRange: 0},
			entity.ReportFilter{Modo: entity.FiltroSemana, DayRange: 1, WeekRange: 1},
		},
		{
			"cero values quedan usables",
			entity.ReportFilter{},
			entity.ReportFilter{Modo: entity.FiltroHoy, DayRange: 1, WeekRange: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestReportFilterUsesRawSales(t *testing.T) {
	assert.True(t, entity.ReportFilter{Modo: entity.FiltroHoy, DayRange: 1}.UsesRawSales(),
		"hoy con un día usa ventas crudas")
	assert.False(t, entity.ReportFilter{Modo: entity.FiltroHoy, DayRange: 7}.UsesRawSales(),
		"hoy con varios días usa la serie archivada")
	assert.False(t, entity.ReportFilter{Modo: entity.FiltroSemana, DayRange: 1}.UsesRawSales())
	assert.False(t, entity.ReportFilter{Modo: entity.FiltroMes, DayRange: 1}.UsesRawSales())
}

func TestReportFilterGranularity(t *testing.T) {
	assert.Equal(t, entity.GranularityDay, entity.ReportFilter{Modo: entity.FiltroHoy}.Granularity())
	assert.Equal(t, entity.GranularityWeek, entity.ReportFilter{Modo: entity.FiltroSemana}.Granularity())
	assert.Equal(t, entity.GranularityMonth, entity.ReportFilter{Modo: entity.FiltroMes}.Granularity())
}

func TestReportFilterSeriesLength(t *testing.T) {
	assert.Equal(t, 14, entity.ReportFilter{Modo: entity.FiltroHoy, DayRange: 14}.SeriesLength())
	assert.Equal(t, 4, entity.ReportFilter{Modo: entity.FiltroSemana, WeekRange: 4}.SeriesLength())
	// los meses siempre son una ventana fija de 6
	assert.Equal(t, 6, entity.ReportFilter{Modo: entity.FiltroMes, WeekRange: 4}.SeriesLength())
}

package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/pkg/format"
)

// LabelHoy etiqueta de la fila única del modo de ventas crudas.
const LabelHoy = "Hoy"

// AggregateRaw produce la fila de reporte del día a partir de líneas de venta
// crudas y el catálogo de productos (modo A):
//
//   - ingresos: suma de totales de línea.
//   - ganancia: por línea, (precio_venta − costo_unitario) × cantidad si el
//     producto existe en el catálogo; si fue eliminado o es desconocido, se
//     toma el total de la línea como ganancia (no hay dato de costo —
//     aproximación documentada).
//   - costos: ingresos − ganancia, derivado, nunca sumado aparte.
//
// Todos los campos se redondean a 2 decimales. Una entrada vacía produce una
// fila en ceros, nunca un error.
func AggregateRaw(lines []entity.SaleLine, productsByID map[int64]entity.Product) entity.ReportRow {
	ingresos := decimal.Zero
	ganancia := decimal.Zero

	for _, line := range lines {
		ingresos = ingresos.Add(line.Total)
		if p, ok := productsByID[line.ProductoID]; ok {
			margen := p.PrecioVenta.Sub(p.CostoUnitario)
			ganancia = ganancia.Add(margen.Mul(decimal.NewFromInt(line.Cantidad)))
		} else {
			ganancia = ganancia.Add(line.Total)
		}
	}

	ingresos = ingresos.Round(2)
	ganancia = ganancia.Round(2)
	return entity.ReportRow{
		Label:    LabelHoy,
		Ingresos: ingresos,
		Costos:   ingresos.Sub(ganancia),
		Ganancia: ganancia,
	}
}

// AggregatePeriods convierte la serie pre-agregada del archivo en filas de
// reporte (modo B), una por métrica y en el mismo orden de entrada: el caller
// es quien pide la serie en el orden cronológico que quiere mostrar.
//
// El backend no reporta costos, así que aquí la derivada es siempre
// costos = ingresos − ganancia.
func AggregatePeriods(metrics []entity.PeriodMetric, labeler *PeriodLabeler, g entity.Granularity) []entity.ReportRow {
	rows := make([]entity.ReportRow, 0, len(metrics))
	for _, m := range metrics {
		ingresos := m.Ingresos.Round(2)
		ganancia := m.Ganancia.Round(2)
		rows = append(rows, entity.ReportRow{
			Label:    labeler.Label(m.Period, g),
			Ingresos: ingresos,
			Costos:   ingresos.Sub(ganancia),
			Ganancia: ganancia,
		})
	}
	return rows
}

// FilterSameDay devuelve las líneas cuya hora cae dentro del día de `now`
// (desde las 00:00 en la zona horaria de `now`). Las líneas con hora no
// parseable se descartan.
func FilterSameDay(lines []entity.SaleLine, now time.Time) []entity.SaleLine {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	var out []entity.SaleLine
	for _, line := range lines {
		t, err := format.ParseHora(line.Hora)
		if err != nil {
			continue
		}
		if !t.Before(start) && t.Before(end) {
			out = append(out, line)
		}
	}
	return out
}

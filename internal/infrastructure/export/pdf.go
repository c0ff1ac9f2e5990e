package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/pkg/format"
)

var (
	pdfColorPrimary = &props.Color{Red: 202, Green: 138, Blue: 4} // amarillo POS
	pdfColorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDF genera el reporte como tabla PDF A4 con una fila de totales al final.
func (r *Renderer) PDF(title string, rows []entity.ReportRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Size: 14, Style: fontstyle.Bold, Align: align.Center, Color: pdfColorPrimary,
			}),
		),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: pdfColorPrimary, Thickness: 0.5}))

	m.AddRows(pdfHeaderRow())
	totalIngresos, totalCostos, totalGanancia := decimal.Zero, decimal.Zero, decimal.Zero
	for _, rr := range rows {
		m.AddRows(pdfDataRow(rr))
		totalIngresos = totalIngresos.Add(rr.Ingresos)
		totalCostos = totalCostos.Add(rr.Costos)
		totalGanancia = totalGanancia.Add(rr.Ganancia)
	}

	m.AddRows(line.NewRow(2, props.Line{Color: pdfColorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		pdfCell(6, "TOTAL", fontstyle.Bold, align.Left),
		pdfCell(2, format.Currency(totalIngresos), fontstyle.Bold, align.Right),
		pdfCell(2, format.Currency(totalCostos), fontstyle.Bold, align.Right),
		pdfCell(2, format.Currency(totalGanancia), fontstyle.Bold, align.Right),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export: generar pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func pdfHeaderRow() core.Row {
	return row.New(8).Add(
		pdfCell(6, "Periodo", fontstyle.Bold, align.Left),
		pdfCell(2, "Ingresos", fontstyle.Bold, align.Right),
		pdfCell(2, "Costos", fontstyle.Bold, align.Right),
		pdfCell(2, "Ganancia", fontstyle.Bold, align.Right),
	)
}

func pdfDataRow(rr entity.ReportRow) core.Row {
	return row.New(7).Add(
		pdfCell(6, rr.Label, fontstyle.Normal, align.Left),
		pdfCell(2, format.Currency(rr.Ingresos), fontstyle.Normal, align.Right),
		pdfCell(2, format.Currency(rr.Costos), fontstyle.Normal, align.Right),
		pdfCell(2, format.Currency(rr.Ganancia), fontstyle.Normal, align.Right),
	)
}

func pdfCell(size int, value string, style fontstyle.Type, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Style: style, Align: a, Color: pdfColorGray}))
}

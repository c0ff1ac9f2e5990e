package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
)

// Excel genera el reporte como .xlsx con cabeceras descriptivas.
func (r *Renderer) Excel(rows []entity.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("export: hoja: %w", err)
	}

	header := []interface{}{"Periodo", "Ingresos", "Costos", "Ganancia"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: cabecera xlsx: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export: celda: %w", err)
		}
		values := []interface{}{
			row.Label,
			row.Ingresos.StringFixed(2),
			row.Costos.StringFixed(2),
			row.Ganancia.StringFixed(2),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("export: fila xlsx: %w", err)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 40)
	_ = f.SetColWidth(sheet, "B", "D", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// BatchExcel genera el .xlsx del detalle por producto de un lote archivado.
func (r *Renderer) BatchExcel(batchID string, details []entity.ArchiveBatchDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Batch " + batchID
	if len(sheet) > 31 {
		sheet = sheet[:31] // límite de nombre de hoja de Excel
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("export: hoja: %w", err)
	}

	header := []interface{}{"producto_id", "nombre", "cantidad_total", "ingresos", "costos", "ganancia"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: cabecera xlsx: %w", err)
	}
	for i, d := range details {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export: celda: %w", err)
		}
		values := []interface{}{
			d.ProductoID,
			d.Nombre,
			d.CantidadTotal,
			d.Ingresos.StringFixed(2),
			d.Costos.StringFixed(2),
			d.Ganancia.StringFixed(2),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("export: fila xlsx: %w", err)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "F", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

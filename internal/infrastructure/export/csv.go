// Package export materializa filas de reporte y detalles de archivo en
// formatos descargables (CSV, XLSX, PDF). El motor de agregación solo entrega
// las filas; toda la codificación de archivos vive aquí.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
)

// Renderer implementa los puertos de render de reports y archive.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// CSV genera el reporte como CSV con cabecera periodo,ingresos,costos,ganancia
// y montos a 2 decimales.
func (r *Renderer) CSV(rows []entity.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"periodo", "ingresos", "costos", "ganancia"}); err != nil {
		return nil, fmt.Errorf("export: cabecera csv: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Label,
			row.Ingresos.StringFixed(2),
			row.Costos.StringFixed(2),
			row.Ganancia.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export: fila csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: csv: %w", err)
	}
	return buf.Bytes(), nil
}

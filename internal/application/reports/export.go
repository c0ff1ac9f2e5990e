package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/Empasex/mini-pos-admin/internal/domain"
	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
)

// Formatos de export soportados.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// RowRenderer materializa filas de reporte en bytes descargables.
// Lo implementa infrastructure/export.
type RowRenderer interface {
	CSV(rows []entity.ReportRow) ([]byte, error)
	Excel(rows []entity.ReportRow) ([]byte, error)
	PDF(title string, rows []entity.ReportRow) ([]byte, error)
}

// ExportFile un archivo generado listo para entregar al caller.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportUseCase refresca el reporte del filtro pedido y lo materializa en el
// formato indicado. El motor solo aporta las filas; la codificación del
// archivo es del renderer.
type ExportUseCase struct {
	controller *Controller
	renderer   RowRenderer
	now        func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(controller *Controller, renderer RowRenderer) *ExportUseCase {
	return &ExportUseCase{controller: controller, renderer: renderer, now: time.Now}
}

// Export genera el archivo del reporte. Formato desconocido → ErrInvalidInput.
func (uc *ExportUseCase) Export(ctx context.Context, filter entity.ReportFilter, formato string) (*ExportFile, error) {
	snap, err := uc.controller.Refresh(ctx, filter)
	if err != nil {
		return nil, err
	}
	stamp := uc.now().Format("2006-01-02")
	base := fmt.Sprintf("reports_%s_%s", snap.Filter.Modo, stamp)

	switch formato {
	case FormatCSV:
		data, err := uc.renderer.CSV(snap.Rows)
		if err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
		return &ExportFile{
			Filename:    base + ".csv",
			ContentType: "text/csv; charset=utf-8",
			Data:        data,
		}, nil
	case FormatXLSX:
		data, err := uc.renderer.Excel(snap.Rows)
		if err != nil {
			return nil, fmt.Errorf("export xlsx: %w", err)
		}
		return &ExportFile{
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case FormatPDF:
		data, err := uc.renderer.PDF("Reporte de ventas", snap.Rows)
		if err != nil {
			return nil, fmt.Errorf("export pdf: %w", err)
		}
		return &ExportFile{
			Filename:    base + ".pdf",
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	}
	return nil, fmt.Errorf("formato %q no soportado: %w", formato, domain.ErrInvalidInput)
}

// Package archive expone las vistas del archivo histórico: listado de lotes,
// detalle por producto y export a hoja de cálculo.
package archive

import (
	"context"
	"fmt"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
)

// ArchiveAPI contrato mínimo contra el backend POS.
type ArchiveAPI interface {
	ListBatches(ctx context.Context) ([]entity.ArchiveBatch, error)
	BatchDetail(ctx context.Context, batchID string) ([]entity.ArchiveBatchDetail, error)
	RunArchive(ctx context.Context, batchSize int) error
	DeleteBatch(ctx context.Context, batchID string) error
}

// DetailRenderer materializa el detalle de un lote en una hoja de cálculo.
type DetailRenderer interface {
	BatchExcel(batchID string, details []entity.ArchiveBatchDetail) ([]byte, error)
}

// UseCase casos de uso del módulo de archivo.
type UseCase struct {
	api      ArchiveAPI
	renderer DetailRenderer
}

// NewUseCase construye el caso de uso.
func NewUseCase(api ArchiveAPI, renderer DetailRenderer) *UseCase {
	return &UseCase{api: api, renderer: renderer}
}

// ListBatches devuelve los lotes archivados.
func (uc *UseCase) ListBatches(ctx context.Context) ([]entity.ArchiveBatch, error) {
	batches, err := uc.api.ListBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return batches, nil
}

// BatchDetail devuelve el resumen por producto de un lote.
func (uc *UseCase) BatchDetail(ctx context.Context, batchID string) ([]entity.ArchiveBatchDetail, error) {
	details, err := uc.api.BatchDetail(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return details, nil
}

// ExportBatch genera el .xlsx del detalle de un lote.
func (uc *UseCase) ExportBatch(ctx context.Context, batchID string) ([]byte, error) {
	details, err := uc.BatchDetail(ctx, batchID)
	if err != nil {
		return nil, err
	}
	data, err := uc.renderer.BatchExcel(batchID, details)
	if err != nil {
		return nil, fmt.Errorf("archive: export de batch %s: %w", batchID, err)
	}
	return data, nil
}

// Run dispara una corrida de archivado.
func (uc *UseCase) Run(ctx context.Context, batchSize int) error {
	if err := uc.api.RunArchive(ctx, batchSize); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}

// Delete elimina el resumen de un lote.
func (uc *UseCase) Delete(ctx context.Context, batchID string) error {
	if err := uc.api.DeleteBatch(ctx, batchID); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}

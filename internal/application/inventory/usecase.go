// Package inventory expone el catálogo de productos del backend POS en modo
// solo lectura (el alta/edición de productos se hace contra el backend
// directamente, no pasa por este servicio).
package inventory

import (
	"context"
	"fmt"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
)

// CatalogAPI contrato mínimo contra el backend POS.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}

// UseCase casos de uso del catálogo.
type UseCase struct {
	api CatalogAPI
}

// NewUseCase construye el caso de uso.
func NewUseCase(api CatalogAPI) *UseCase {
	return &UseCase{api: api}
}

// List devuelve el catálogo completo.
func (uc *UseCase) List(ctx context.Context) ([]entity.Product, error) {
	products, err := uc.api.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}
	return products, nil
}

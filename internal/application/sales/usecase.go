// Package sales expone el listado de ventas agrupadas y el registro de
// ventas nuevas contra el backend POS.
package sales

import (
	"context"
	"fmt"

	"github.com/Empasex/mini-pos-admin/internal/application/dto"
	"github.com/Empasex/mini-pos-admin/internal/domain"
	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/internal/domain/report"
	"github.com/Empasex/mini-pos-admin/internal/infrastructure/posapi"
)

// SalesAPI contrato mínimo contra el backend POS.
type SalesAPI interface {
	ListSales(ctx context.Context) ([]entity.SaleLine, error)
	CreateSale(ctx context.Context, req posapi.CreateSaleRequest) error
}

// UseCase casos de uso del módulo de ventas.
type UseCase struct {
	api SalesAPI
}

// NewUseCase construye el caso de uso.
func NewUseCase(api SalesAPI) *UseCase {
	return &UseCase{api: api}
}

// ListGrouped devuelve las ventas vigentes agrupadas en ventas lógicas,
// más recientes primero.
func (uc *UseCase) ListGrouped(ctx context.Context) ([]entity.Transaction, error) {
	lines, err := uc.api.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("sales: %w", err)
	}
	return report.GroupTransactions(lines), nil
}

// Register registra el carrito como líneas individuales, en orden. El backend
// asigna hora y total a cada línea; si una línea falla se aborta el resto y
// se reporta cuántas alcanzaron a registrarse.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterSaleRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("sales: carrito vacío: %w", domain.ErrInvalidInput)
	}
	for _, item := range req.Items {
		if item.ProductoID <= 0 || item.Cantidad < 1 {
			return fmt.Errorf("sales: línea inválida (producto %d, cantidad %d): %w",
				item.ProductoID, item.Cantidad, domain.ErrInvalidInput)
		}
	}

	for i, item := range req.Items {
		err := uc.api.CreateSale(ctx, posapi.CreateSaleRequest{
			ProductoID: item.ProductoID,
			Cantidad:   item.Cantidad,
		})
		if err != nil {
			return fmt.Errorf("sales: línea %d de %d: %w", i+1, len(req.Items), err)
		}
	}
	return nil
}

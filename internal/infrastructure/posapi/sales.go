package posapi

import (
	"context"
	"fmt"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
)

type saleWire struct {
	ID            entero `json:"id"`
	ProductoID    entero `json:"producto_id"`
	Nombre        string `json:"nombre"`
	Cantidad      entero `json:"cantidad"`
	Total         monto  `json:"total"`
	Hora          string `json:"hora"`
	TransactionID texto  `json:"transaction_id"`
}

// ListSales devuelve las líneas de venta vigentes (aún no archivadas).
func (c *Client) ListSales(ctx context.Context) ([]entity.SaleLine, error) {
	var wire []saleWire
	if err := c.get(ctx, "/sales/", nil, &wire); err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}

	lines := make([]entity.SaleLine, 0, len(wire))
	for _, w := range wire {
		lines = append(lines, entity.SaleLine{
			ID:            int64(w.ID),
			ProductoID:    int64(w.ProductoID),
			Nombre:        w.Nombre,
			Cantidad:      int64(w.Cantidad),
			Total:         w.Total.Decimal,
			Hora:          w.Hora,
			TransactionID: string(w.TransactionID),
		})
	}
	return lines, nil
}

// CreateSaleRequest payload de registro de una línea de venta.
type CreateSaleRequest struct {
	ProductoID int64 `json:"producto_id"`
	Cantidad   int64 `json:"cantidad"`
}

// CreateSale registra una línea de venta en el backend. El backend calcula el
// total con el precio vigente y asigna la hora.
func (c *Client) CreateSale(ctx context.Context, req CreateSaleRequest) error {
	if err := c.post(ctx, "/sales/", nil, req, nil); err != nil {
		return fmt.Errorf("registrar venta: %w", err)
	}
	return nil
}

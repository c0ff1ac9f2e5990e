package posapi

import (
	"context"
	"fmt"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
)

type productWire struct {
	ID            entero `json:"id"`
	Nombre        string `json:"nombre"`
	PrecioVenta   monto  `json:"precio_venta"`
	CostoUnitario monto  `json:"costo_unitario"`
	Stock         entero `json:"stock"`
}

// ListProducts devuelve el catálogo completo de productos.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var wire []productWire
	if err := c.get(ctx, "/products/", nil, &wire); err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	products := make([]entity.Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, entity.Product{
			ID:            int64(w.ID),
			Nombre:        w.Nombre,
			PrecioVenta:   w.PrecioVenta.Decimal,
			CostoUnitario: w.CostoUnitario.Decimal,
			Stock:         int64(w.Stock),
		})
	}
	return products, nil
}

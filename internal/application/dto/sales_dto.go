package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/pkg/format"
)

// GroupedSaleDTO una venta lógica (líneas agrupadas) para el listado.
type GroupedSaleDTO struct {
	Key      string           `json:"key"`
	Hora     string           `json:"hora"`
	Items    []GroupedItemDTO `json:"items"`
	Total    decimal.Decimal  `json:"total"`
	Cantidad int64            `json:"cantidad"`
	TotalFmt string           `json:"total_fmt"`
}

// GroupedItemDTO una línea dentro de la venta agrupada.
type GroupedItemDTO struct {
	Nombre   string          `json:"nombre"`
	Cantidad int64           `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// RegisterSaleRequest payload de POST /api/sales: el carrito completo.
type RegisterSaleRequest struct {
	Items []RegisterSaleItem `json:"items"`
}

// RegisterSaleItem una línea del carrito.
type RegisterSaleItem struct {
	ProductoID int64 `json:"producto_id"`
	Cantidad   int64 `json:"cantidad"`
}

// NewGroupedSales convierte ventas agrupadas de dominio a DTO.
func NewGroupedSales(groups []entity.Transaction) []GroupedSaleDTO {
	out := make([]GroupedSaleDTO, 0, len(groups))
	for _, g := range groups {
		items := make([]GroupedItemDTO, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, GroupedItemDTO{Nombre: it.Nombre, Cantidad: it.Cantidad, Total: it.Total})
		}
		out = append(out, GroupedSaleDTO{
			Key:      g.Key,
			Hora:     g.Hora,
			Items:    items,
			Total:    g.TotalAmount,
			Cantidad: g.TotalQuantity,
			TotalFmt: format.Currency(g.TotalAmount),
		})
	}
	return out
}

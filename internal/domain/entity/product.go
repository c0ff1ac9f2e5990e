package entity

import "github.com/shopspring/decimal"

// Product es un producto del catálogo del backend POS. Para el motor de
// reportes es una tabla lateral de solo lectura: únicamente se consulta el
// costo y el nombre por id, nunca se muta.
type Product struct {
	ID            int64           `json:"id"`
	Nombre        string          `json:"nombre"`
	PrecioVenta   decimal.Decimal `json:"precio_venta"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Stock         int64           `json:"stock"`
}

// ProductIndex construye el mapa id → producto que usa la agregación para
// lookups O(1). Se reconstruye en cada llamada desde el snapshot vigente del
// catálogo; no se persiste entre llamadas.
func ProductIndex(products []Product) map[int64]Product {
	byID := make(map[int64]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

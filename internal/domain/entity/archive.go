package entity

import "github.com/shopspring/decimal"

// ArchiveBatch es el resumen de un lote archivado por el backend POS.
type ArchiveBatch struct {
	BatchID   string          `json:"batch_id"`
	CreatedAt string          `json:"created_at"`
	Ventas    int64           `json:"ventas"`
	Ingresos  decimal.Decimal `json:"ingresos"`
	Ganancia  decimal.Decimal `json:"ganancia"`
}

// ArchiveBatchDetail es el resumen por producto dentro de un lote.
type ArchiveBatchDetail struct {
	ProductoID    int64           `json:"producto_id"`
	Nombre        string          `json:"nombre"`
	CantidadTotal int64           `json:"cantidad_total"`
	Ingresos      decimal.Decimal `json:"ingresos"`
	Costos        decimal.Decimal `json:"costos"`
	Ganancia      decimal.Decimal `json:"ganancia"`
}

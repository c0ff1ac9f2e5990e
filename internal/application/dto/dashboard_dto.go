package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del día más la serie de los últimos 7 días.
type DashboardSummaryDTO struct {
	VentasHoy    decimal.Decimal `json:"ventas_hoy"`
	GananciasHoy decimal.Decimal `json:"ganancias_hoy"`

	ProductoMasVendido TopProductDTO `json:"producto_mas_vendido"`

	// Productos con stock en o bajo el umbral de alerta
	StockBajo []LowStockDTO `json:"stock_bajo"`

	// Serie diaria de los últimos 7 días (incluye hoy), cronológica
	Ultimos7Dias []DailyPointDTO `json:"ultimos_7_dias"`
}

// TopProductDTO el producto con más unidades vendidas del set vigente.
type TopProductDTO struct {
	ProductoID int64  `json:"producto_id"`
	Nombre     string `json:"nombre"`
	Cantidad   int64  `json:"cantidad"`
}

// LowStockDTO producto bajo el umbral de alerta de stock.
type LowStockDTO struct {
	ProductoID int64  `json:"producto_id"`
	Nombre     string `json:"nombre"`
	Stock      int64  `json:"stock"`
}

// DailyPointDTO un punto de la serie diaria.
type DailyPointDTO struct {
	Dia      string          `json:"dia"` // dd/mm
	Ventas   decimal.Decimal `json:"ventas"`
	Ganancia decimal.Decimal `json:"ganancia"`
}

package entity

import "github.com/shopspring/decimal"

// Granularity identifica el tamaño de bucket de la serie de métricas archivadas.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// PeriodMetric es un bucket pre-agregado del endpoint de series del archivo
// (/archive/metrics/series). Solo lectura; el backend no reporta costos, así
// que el costo siempre se deriva como ingresos − ganancia.
type PeriodMetric struct {
	Period   string          `json:"period"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Ganancia decimal.Decimal `json:"ganancia"`
	Items    int64           `json:"items"`
}

// ReportRow es la unidad que consumen la UI y los exports: un periodo
// etiquetado con ingresos, costos y ganancia.
//
// Invariante: Costos = Ingresos − Ganancia siempre (±0.01 por redondeo). El
// costo nunca se obtiene de una fuente independiente; en el camino de líneas
// crudas la derivada es la ganancia y en el de métricas archivadas, el costo.
type ReportRow struct {
	Label    string          `json:"label"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Costos   decimal.Decimal `json:"costos"`
	Ganancia decimal.Decimal `json:"ganancia"`
}

package entity

import "github.com/shopspring/decimal"

// SaleLine es una línea de venta tal como la devuelve el backend POS: un
// registro plano por producto vendido. TransactionID es opcional; cuando el
// backend no lo envía, las líneas registradas en el mismo instante se
// consideran una misma venta (ver report.GroupTransactions).
// Inmutable una vez recibida.
type SaleLine struct {
	ID            int64           `json:"id"`
	ProductoID    int64           `json:"producto_id"`
	Nombre        string          `json:"nombre"`
	Cantidad      int64           `json:"cantidad"`
	Total         decimal.Decimal `json:"total"`
	Hora          string          `json:"hora"` // timestamp crudo del backend, se normaliza al parsear
	TransactionID string          `json:"transaction_id,omitempty"`
}

// TransactionItem es una línea dentro de una venta agrupada.
type TransactionItem struct {
	Nombre   string          `json:"nombre"`
	Cantidad int64           `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// Transaction es una venta lógica derivada: el grupo de líneas registradas
// juntas. Se recalcula en cada render desde el set vigente de SaleLine y se
// descarta después; no persiste identidad entre llamadas.
//
// Invariantes: cada SaleLine pertenece a exactamente una Transaction; la suma
// de los totales de Items es igual a TotalAmount y la de cantidades a
// TotalQuantity.
type Transaction struct {
	Key           string            `json:"key"`
	Hora          string            `json:"hora"`
	Items         []TransactionItem `json:"items"`
	TotalAmount   decimal.Decimal   `json:"total"`
	TotalQuantity int64             `json:"cantidad"`
}

package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/internal/domain/report"
)

func saleLine(id int64, productName string, qty int64, total float64, hora, txID string) entity.SaleLine {
	return entity.SaleLine{
		ID:            id,
		ProductoID:    id * 10,
		Nombre:        productName,
		Cantidad:      qty,
		Total:         decimal.NewFromFloat(total),
		Hora:          hora,
		TransactionID: txID,
	}
}

func TestGroupTransactions_PorTransactionID(t *testing.T) {
	// dos líneas con el mismo transaction_id pero productos distintos → una
	// sola venta con dos items
	lines := []entity.SaleLine{
		saleLine(1, "arroz", 2, 10, "2025-01-01T10:00:00Z", "abc"),
		saleLine(2, "azúcar", 1, 5.5, "2025-01-01T10:00:03Z", "abc"),
	}

	groups := report.GroupTransactions(lines)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "abc", g.Key)
	require.Len(t, g.Items, 2)
	assert.Equal(t, "arroz", g.Items[0].Nombre)
	assert.Equal(t, "azúcar", g.Items[1].Nombre)
	assert.Equal(t, "15.5", g.TotalAmount.String())
	assert.Equal(t, int64(3), g.TotalQuantity)
}

func TestGroupTransactions_PorSegundoTruncado(t *testing.T) {
	// sin transaction_id: líneas en el mismo segundo se asumen una venta
	lines := []entity.SaleLine{
		saleLine(1, "arroz", 1, 10, "2025-01-01 10:00:00.120000", ""),
		saleLine(2, "azúcar", 1, 5, "2025-01-01 10:00:00.480000", ""),
		saleLine(3, "leche", 1, 4, "2025-01-01 10:00:01", ""),
	}

	groups := report.GroupTransactions(lines)

	require.Len(t, groups, 2)
	// la venta de las 10:00:01 es más reciente y sale primero
	assert.Equal(t, int64(1), groups[0].TotalQuantity)
	assert.Equal(t, int64(2), groups[1].TotalQuantity)
	assert.Equal(t, "15", groups[1].TotalAmount.String())
}

func TestGroupTransactions_HoraInvalidaAislaLaLinea(t *testing.T) {
	// una hora que no parsea agrupa bajo el id crudo para no contaminar
	// otros grupos
	lines := []entity.SaleLine{
		saleLine(7, "arroz", 1, 10, "no-es-fecha", ""),
		saleLine(8, "azúcar", 1, 5, "tampoco", ""),
	}

	groups := report.GroupTransactions(lines)

	require.Len(t, groups, 2)
	keys := []string{groups[0].Key, groups[1].Key}
	assert.ElementsMatch(t, []string{"7", "8"}, keys)
}

func TestGroupTransactions_OrdenMasRecientePrimero(t *testing.T) {
	lines := []entity.SaleLine{
		saleLine(1, "arroz", 1, 10, "2025-01-01T08:00:00Z", "t1"),
		saleLine(2, "azúcar", 1, 5, "2025-01-01T12:00:00Z", "t2"),
		saleLine(3, "leche", 1, 4, "2025-01-01T10:00:00Z", "t3"),
	}

	groups := report.GroupTransactions(lines)

	require.Len(t, groups, 3)
	assert.Equal(t, "t2", groups[0].Key)
	assert.Equal(t, "t3", groups[1].Key)
	assert.Equal(t, "t1", groups[2].Key)
}

// TestGroupTransactions_Conservacion: el total de items en la salida iguala
// el número de líneas de entrada, y la suma de totales por venta iguala la
// suma de totales de línea.
func TestGroupTransactions_Conservacion(t *testing.T) {
	lines := []entity.SaleLine{
		saleLine(1, "arroz", 2, 10, "2025-01-01T10:00:00Z", "a"),
		saleLine(2, "azúcar", 1, 5, "2025-01-01T10:00:00Z", "a"),
		saleLine(3, "leche", 3, 12, "2025-01-01T11:00:00Z", ""),
		saleLine(4, "pan", 1, 2.5, "rota", ""),
	}

	groups := report.GroupTransactions(lines)

	itemCount := 0
	sum := decimal.Zero
	for _, g := range groups {
		itemCount += len(g.Items)
		sum = sum.Add(g.TotalAmount)
	}

	assert.Equal(t, len(lines), itemCount)

	want := decimal.Zero
	for _, l := range lines {
		want = want.Add(l.Total)
	}
	assert.True(t, want.Equal(sum), "suma de ventas %s != suma de líneas %s", sum, want)
}

func TestGroupTransactions_EntradaVacia(t *testing.T) {
	assert.Empty(t, report.GroupTransactions(nil))
}

package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/pkg/format"
)

// GroupTransactions agrupa líneas de venta planas en ventas lógicas,
// ordenadas de la más reciente a la más antigua.
//
// Clave de agrupación, en orden de preferencia:
//  1. transaction_id cuando el backend lo envía.
//  2. El timestamp truncado a segundos en UTC. Dos líneas con el mismo
//     segundo y sin transaction_id se asumen parte de la misma venta;
//     heurística documentada, no una garantía.
//  3. El id crudo de la línea si el timestamp no parsea, para no contaminar
//     otros grupos.
//
// Dentro de un grupo los items conservan el orden de entrada; los totales son
// sumas acumuladas. Sin efectos laterales: determinista para un mismo input.
func GroupTransactions(lines []entity.SaleLine) []entity.Transaction {
	byKey := make(map[string]int, len(lines))
	groups := make([]entity.Transaction, 0, len(lines))

	for _, line := range lines {
		key := groupKey(line)

		idx, ok := byKey[key]
		if !ok {
			idx = len(groups)
			byKey[key] = idx
			groups = append(groups, entity.Transaction{Key: key, Hora: line.Hora})
		}

		g := &groups[idx]
		g.Items = append(g.Items, entity.TransactionItem{
			Nombre:   line.Nombre,
			Cantidad: line.Cantidad,
			Total:    line.Total,
		})
		g.TotalAmount = g.TotalAmount.Add(line.Total)
		g.TotalQuantity += line.Cantidad
	}

	// Más recientes primero; las horas no parseables quedan al final.
	sort.SliceStable(groups, func(i, j int) bool {
		return groupTime(groups[i]).After(groupTime(groups[j]))
	})
	return groups
}

func groupKey(line entity.SaleLine) string {
	if line.TransactionID != "" {
		return line.TransactionID
	}
	t, err := format.ParseHora(line.Hora)
	if err != nil {
		return strconv.FormatInt(line.ID, 10)
	}
	return t.UTC().Format("2006-01-02T15:04:05")
}

func groupTime(g entity.Transaction) time.Time {
	t, err := format.ParseHora(g.Hora)
	if err != nil {
		return time.Time{}
	}
	return t
}

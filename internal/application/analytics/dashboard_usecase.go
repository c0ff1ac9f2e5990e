// Package analytics contiene el caso de uso del panel de control: KPIs del
// día y serie de los últimos 7 días calculados sobre las ventas vigentes.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Empasex/mini-pos-admin/internal/application/dto"
	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/pkg/format"
)

// Umbral de alerta de stock del widget de inventario.
const stockAlertThreshold = 5

// DashboardAPI contrato mínimo contra el backend POS.
type DashboardAPI interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	ListSales(ctx context.Context) ([]entity.SaleLine, error)
}

// DashboardUseCase genera el resumen del panel de control.
//
// Trabaja solo sobre las ventas vigentes (no archivadas): los KPIs históricos
// largos salen del módulo de reportes, no de aquí.
type DashboardUseCase struct {
	api DashboardAPI
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(api DashboardAPI) *DashboardUseCase {
	return &DashboardUseCase{api: api, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos llamadas en paralelo:
//  1. ListProducts → lookup de costos + widget de stock bajo
//  2. ListSales    → KPIs de hoy + serie de 7 días
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		products []entity.Product
		err      error
	}
	type salesResult struct {
		lines []entity.SaleLine
		err   error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		p, err := uc.api.ListProducts(ctx)
		productsCh <- productsResult{p, err}
	}()
	go func() {
		s, err := uc.api.ListSales(ctx)
		salesCh <- salesResult{s, err}
	}()

	products := <-productsCh
	sales := <-salesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}

	now := uc.now()
	byID := entity.ProductIndex(products.products)

	ventasHoy, gananciasHoy := dayTotals(sales.lines, byID, now)

	return &dto.DashboardSummaryDTO{
		VentasHoy:          ventasHoy,
		GananciasHoy:       gananciasHoy,
		ProductoMasVendido: topProduct(sales.lines, byID),
		StockBajo:          lowStock(products.products),
		Ultimos7Dias:       last7Days(sales.lines, byID, now),
	}, nil
}

// dayTotals suma ingresos y ganancia de las líneas del día de `day`.
// Ganancia por línea: (precio − costo) × cantidad; si el producto ya no
// existe en el catálogo, el total de la línea cuenta como ganancia.
func dayTotals(lines []entity.SaleLine, byID map[int64]entity.Product, day time.Time) (ventas, ganancia decimal.Decimal) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	for _, line := range lines {
		t, err := format.ParseHora(line.Hora)
		if err != nil || t.Before(start) || !t.Before(end) {
			continue
		}
		ventas = ventas.Add(line.Total)
		if p, ok := byID[line.ProductoID]; ok {
			ganancia = ganancia.Add(p.PrecioVenta.Sub(p.CostoUnitario).Mul(decimal.NewFromInt(line.Cantidad)))
		} else {
			ganancia = ganancia.Add(line.Total)
		}
	}
	return ventas.Round(2), ganancia.Round(2)
}

func topProduct(lines []entity.SaleLine, byID map[int64]entity.Product) dto.TopProductDTO {
	qtyByProduct := make(map[int64]int64)
	for _, line := range lines {
		qtyByProduct[line.ProductoID] += line.Cantidad
	}
	if len(qtyByProduct) == 0 {
		return dto.TopProductDTO{Nombre: "—"}
	}

	ids := make([]int64, 0, len(qtyByProduct))
	for id := range qtyByProduct {
		ids = append(ids, id)
	}
	// desempate por id para que el resultado sea estable
	sort.Slice(ids, func(i, j int) bool {
		if qtyByProduct[ids[i]] != qtyByProduct[ids[j]] {
			return qtyByProduct[ids[i]] > qtyByProduct[ids[j]]
		}
		return ids[i] < ids[j]
	})

	top := ids[0]
	nombre := "Desconocido"
	if p, ok := byID[top]; ok {
		nombre = p.Nombre
	}
	return dto.TopProductDTO{ProductoID: top, Nombre: nombre, Cantidad: qtyByProduct[top]}
}

func lowStock(products []entity.Product) []dto.LowStockDTO {
	var out []dto.LowStockDTO
	for _, p := range products {
		if p.Stock <= stockAlertThreshold {
			out = append(out, dto.LowStockDTO{ProductoID: p.ID, Nombre: p.Nombre, Stock: p.Stock})
		}
	}
	return out
}

func last7Days(lines []entity.SaleLine, byID map[int64]entity.Product, now time.Time) []dto.DailyPointDTO {
	points := make([]dto.DailyPointDTO, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		ventas, ganancia := dayTotals(lines, byID, day)
		points = append(points, dto.DailyPointDTO{
			Dia:      day.Format("02/01"),
			Ventas:   ventas,
			Ganancia: ganancia,
		})
	}
	return points
}

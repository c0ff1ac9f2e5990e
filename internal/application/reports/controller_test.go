package reports

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/internal/domain/report"
	"github.com/Empasex/mini-pos-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// Lunes 1 de septiembre de 2025, mediodía UTC.
var testNow = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

// fakeSource implementa DataSource en memoria. salesGate permite simular una
// respuesta lenta de ListSales para probar el descarte de refreshes obsoletos.
type fakeSource struct {
	products []entity.Product
	lines    []entity.SaleLine
	series   []entity.PeriodMetric
	err      error

	salesGate chan struct{}

	mu          sync.Mutex
	salesCalls  int
	seriesCalls int
	lastGran    entity.Granularity
	lastLast    int
}

func (f *fakeSource) ListProducts(ctx context.Context) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeSource) ListSales(ctx context.Context) ([]entity.SaleLine, error) {
	f.mu.Lock()
	f.salesCalls++
	gate := f.salesGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.lines, nil
}

func (f *fakeSource) MetricsSeries(ctx context.Context, g entity.Granularity, last int) ([]entity.PeriodMetric, error) {
	f.mu.Lock()
	f.seriesCalls++
	f.lastGran = g
	f.lastLast = last
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.series, nil
}

func (f *fakeSource) calls() (sales, series int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.salesCalls, f.seriesCalls
}

func newTestController(src *fakeSource) *Controller {
	labeler := report.NewPeriodLabelerAt(func() time.Time { return testNow })
	c := NewController(src, labeler, logger.New(logger.Config{Level: "disabled"}))
	c.now = func() time.Time { return testNow }
	return c
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestController_EstadoInicialIdle(t *testing.T) {
	c := newTestController(&fakeSource{})
	assert.Equal(t, StateIdle, c.Snapshot().State)
}

func TestRefresh_HoyUnDia_AgregaVentasCrudas(t *testing.T) {
	src := &fakeSource{
		products: []entity.Product{
			{ID: 1, Nombre: "Café americano", PrecioVenta: dec("10"), CostoUnitario: dec("6")},
		},
		lines: []entity.SaleLine{
			// con producto en catálogo: ganancia (10-6)*2 = 8
			{ID: 1, ProductoID: 1, Cantidad: 2, Total: dec("20"), Hora: "2025-09-01 10:00:00"},
			// producto eliminado del catálogo: el total cuenta como ganancia
			{ID: 2, ProductoID: 99, Cantidad: 1, Total: dec("5"), Hora: "2025-09-01 11:30:00"},
			// fuera del día: se descarta
			{ID: 3, ProductoID: 1, Cantidad: 10, Total: dec("100"), Hora: "2025-08-31 23:59:59"},
		},
	}
	c := newTestController(src)

	snap, err := c.Refresh(context.Background(), entity.ReportFilter{Modo: entity.FiltroHoy, DayRange: 1, WeekRange: 1})
	require.NoError(t, err)

	assert.Equal(t, StateReady, snap.State)
	require.Len(t, snap.Rows, 1)

	row := snap.Rows[0]
	assert.Equal(t, report.LabelHoy, row.Label)
	assert.True(t, row.Ingresos.Equal(dec("25")), "ingresos: %s", row.Ingresos)
	assert.True(t, row.Ganancia.Equal(dec("13")), "ganancia: %s", row.Ganancia)
	assert.True(t, row.Costos.Equal(dec("12")), "costos: %s", row.Costos)

	sales, series := src.calls()
	assert.Equal(t, 1, sales, "hoy/1 día debe usar ventas crudas")
	assert.Equal(t, 0, series, "hoy/1 día no debe pedir la serie archivada")
}

func TestRefresh_Semana_UsaSerieArchivada(t *testing.T) {
	src := &fakeSource{
		series: []entity.PeriodMetric{
			{Period: "2025-W34", Ingresos: dec("100"), Ganancia: dec("40"), Items: 5},
			{Period: "2025-W35", Ingresos: dec("200"), Ganancia: dec("90"), Items: 9},
		},
	}
	c := newTestController(src)

	snap, err := c.Refresh(context.Background(), entity.ReportFilter{Modo: entity.FiltroSemana, WeekRange: 3})
	require.NoError(t, err)

	assert.Equal(t, StateReady, snap.State)
	require.Len(t, snap.Rows, 2)
	assert.Equal(t, "18/08/2025 — 24/08/2025", snap.Rows[0].Label)
	assert.Equal(t, "25/08/2025 — 31/08/2025", snap.Rows[1].Label)
	assert.True(t, snap.Rows[0].Costos.Equal(dec("60")), "costos = ingresos - ganancia")
	assert.True(t, snap.Rows[1].Costos.Equal(dec("110")))

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.Equal(t, entity.GranularityWeek, src.lastGran)
	assert.Equal(t, 3, src.lastLast)
	assert.Equal(t, 0, src.salesCalls)
}

func TestRefresh_FiltroInvalidoSeNormaliza(t *testing.T) {
	src := &fakeSource{}
	c := newTestController(src)

	snap, err := c.Refresh(context.Background(), entity.ReportFilter{Modo: "trimestre", DayRange: 5, WeekRange: 99})
	require.NoError(t, err)

	assert.Equal(t, entity.FiltroHoy, snap.Filter.Modo)
	assert.Equal(t, 1, snap.Filter.DayRange)
	assert.Equal(t, 8, snap.Filter.WeekRange)

	// sin ventas: una fila en ceros, nunca un error
	require.Len(t, snap.Rows, 1)
	assert.True(t, snap.Rows[0].Ingresos.IsZero())
}

func TestRefresh_FalloDejaFilasVacias(t *testing.T) {
	src := &fakeSource{err: errors.New("conexión rechazada")}
	c := newTestController(src)

	_, err := c.Refresh(context.Background(), entity.ReportFilter{Modo: entity.FiltroMes})
	require.Error(t, err)

	snap := c.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Empty(t, snap.Rows, "en fallo no se conservan filas")
	assert.Error(t, snap.Err)
}

// Un refresh lento emitido antes no debe pisar el resultado de una selección
// más reciente: el resultado obsoleto se descarta y el snapshot vigente queda
// siendo el del último filtro pedido.
func TestRefresh_ResultadoObsoletoSeDescarta(t *testing.T) {
	src := &fakeSource{
		lines: []entity.SaleLine{
			{ID: 1, ProductoID: 1, Cantidad: 1, Total: dec("10"), Hora: "2025-09-01 09:00:00"},
		},
		series: []entity.PeriodMetric{
			{Period: "2025-08", Ingresos: dec("500"), Ganancia: dec("200")},
		},
		salesGate: make(chan struct{}),
	}
	c := newTestController(src)

	type result struct {
		snap Snapshot
		err  error
	}
	done := make(chan result, 1)
	go func() {
		snap, err := c.Refresh(context.Background(), entity.ReportFilter{Modo: entity.FiltroHoy, DayRange: 1})
		done <- result{snap, err}
	}()

	// esperar a que el primer refresh quede bloqueado en ListSales
	require.Eventually(t, func() bool {
		sales, _ := src.calls()
		return sales == 1
	}, time.Second, 5*time.Millisecond)

	// segunda selección: completa de inmediato por el camino de la serie
	snap2, err := c.Refresh(context.Background(), entity.ReportFilter{Modo: entity.FiltroMes})
	require.NoError(t, err)
	assert.Equal(t, StateReady, snap2.State)
	assert.Equal(t, entity.FiltroMes, snap2.Filter.Modo)

	// liberar el refresh lento: su resultado llega tarde y debe descartarse
	close(src.salesGate)
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, entity.FiltroMes, res.snap.Filter.Modo, "el refresh obsoleto devuelve el snapshot vigente, no el suyo")

	final := c.Snapshot()
	assert.Equal(t, StateReady, final.State)
	assert.Equal(t, entity.FiltroMes, final.Filter.Modo)
	require.Len(t, final.Rows, 1)
	assert.Equal(t, "agosto 2025", final.Rows[0].Label)
}

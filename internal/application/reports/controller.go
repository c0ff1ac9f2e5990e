// Package reports orquesta el módulo de reportes: decide la fuente de datos
// según el filtro seleccionado, ejecuta los fetches en paralelo y pasa los
// resultados por el motor de agregación.
package reports

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/internal/domain/report"
	"github.com/Empasex/mini-pos-admin/pkg/logger"
)

// DataSource es el contrato mínimo contra el backend POS que necesita el
// controller. Lo implementa *posapi.Client; la interfaz permite fakes en tests.
type DataSource interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	ListSales(ctx context.Context) ([]entity.SaleLine, error)
	MetricsSeries(ctx context.Context, g entity.Granularity, last int) ([]entity.PeriodMetric, error)
}

// State estado del ciclo de carga del reporte.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Snapshot es el resultado visible del último refresh aplicado: estado,
// filtro normalizado y filas. En fallo las filas quedan vacías y Err trae la
// causa; no se conservan filas viejas (no hay caché).
type Snapshot struct {
	State      State
	Filter     entity.ReportFilter
	Rows       []entity.ReportRow
	Err        error
	Generation uint64
}

// Controller mantiene el snapshot vigente del reporte y lo refresca bajo
// demanda. Transiciones: Idle → Loading → {Ready | Failed}, re-entrante.
//
// Cada refresh toma un número de generación creciente al emitirse; al
// completar, el resultado solo se aplica si su generación sigue siendo la
// última emitida. Un refresh supersedido se descarta en silencio, de modo que
// una respuesta lenta de un filtro anterior nunca pisa al filtro actual.
type Controller struct {
	source  DataSource
	labeler *report.PeriodLabeler
	log     *logger.Logger
	now     func() time.Time

	mu   sync.Mutex
	gen  uint64
	snap Snapshot
}

// NewController construye el controller en estado Idle.
func NewController(source DataSource, labeler *report.PeriodLabeler, log *logger.Logger) *Controller {
	return &Controller{
		source:  source,
		labeler: labeler,
		log:     log,
		now:     time.Now,
		snap:    Snapshot{State: StateIdle},
	}
}

// Refresh carga los datos del filtro y devuelve el snapshot resultante.
//
// El catálogo de productos se pide siempre, en paralelo con la fuente de
// datos del filtro: el modo A lo necesita para costos y mantener el lookup de
// nombres caliente no penaliza al modo B.
func (c *Controller) Refresh(ctx context.Context, filter entity.ReportFilter) (Snapshot, error) {
	filter = filter.Normalize()

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.snap.State = StateLoading
	c.snap.Filter = filter
	c.mu.Unlock()

	rows, err := c.load(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// Refresh supersedido por una selección más reciente: se descarta.
		c.log.Debug().
			Uint64("generation", gen).
			Uint64("current", c.gen).
			Msg("resultado de refresh descartado por obsoleto")
		return c.snap, nil
	}

	if err != nil {
		c.snap = Snapshot{State: StateFailed, Filter: filter, Err: err, Generation: gen}
		c.log.Error().Err(err).Str("modo", filter.Modo).Msg("refresh de reporte falló")
		return c.snap, err
	}

	c.snap = Snapshot{State: StateReady, Filter: filter, Rows: rows, Generation: gen}
	c.log.Info().
		Str("modo", filter.Modo).
		Int("rows", len(rows)).
		Msg("reporte actualizado")
	return c.snap, nil
}

// Snapshot devuelve el último snapshot aplicado.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

func (c *Controller) load(ctx context.Context, filter entity.ReportFilter) ([]entity.ReportRow, error) {
	var (
		products []entity.Product
		lines    []entity.SaleLine
		series   []entity.PeriodMetric
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = c.source.ListProducts(gctx)
		return err
	})
	if filter.UsesRawSales() {
		g.Go(func() error {
			var err error
			lines, err = c.source.ListSales(gctx)
			return err
		})
	} else {
		g.Go(func() error {
			var err error
			series, err = c.source.MetricsSeries(gctx, filter.Granularity(), filter.SeriesLength())
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reports: cargar datos del filtro %q: %w", filter.Modo, err)
	}

	if filter.UsesRawSales() {
		hoy := report.FilterSameDay(lines, c.now())
		row := report.AggregateRaw(hoy, entity.ProductIndex(products))
		return []entity.ReportRow{row}, nil
	}
	return report.AggregatePeriods(series, c.labeler, filter.Granularity()), nil
}

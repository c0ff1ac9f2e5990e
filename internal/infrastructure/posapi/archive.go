package posapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
)

type metricWire struct {
	Period   string `json:"period"`
	Ingresos monto  `json:"ingresos"`
	Ganancia monto  `json:"ganancia"`
	Items    entero `json:"items"`
}

// MetricsSeries devuelve los últimos `last` buckets pre-agregados del archivo
// con la granularidad indicada (day/week/month), en el orden en que el
// backend los entrega (cronológico ascendente).
func (c *Client) MetricsSeries(ctx context.Context, g entity.Granularity, last int) ([]entity.PeriodMetric, error) {
	q := url.Values{}
	q.Set("period", string(g))
	q.Set("last", strconv.Itoa(last))

	var wire []metricWire
	if err := c.get(ctx, "/archive/metrics/series", q, &wire); err != nil {
		return nil, fmt.Errorf("serie de métricas (%s, %d): %w", g, last, err)
	}

	metrics := make([]entity.PeriodMetric, 0, len(wire))
	for _, w := range wire {
		metrics = append(metrics, entity.PeriodMetric{
			Period:   w.Period,
			Ingresos: w.Ingresos.Decimal,
			Ganancia: w.Ganancia.Decimal,
			Items:    int64(w.Items),
		})
	}
	return metrics, nil
}

type batchWire struct {
	BatchID   texto  `json:"batch_id"`
	CreatedAt string `json:"created_at"`
	Ventas    entero `json:"ventas"`
	Ingresos  monto  `json:"ingresos"`
	Ganancia  monto  `json:"ganancia"`
}

// ListBatches devuelve los resúmenes de lotes archivados.
func (c *Client) ListBatches(ctx context.Context) ([]entity.ArchiveBatch, error) {
	var wire []batchWire
	if err := c.get(ctx, "/archive/batches", nil, &wire); err != nil {
		return nil, fmt.Errorf("listar batches: %w", err)
	}

	batches := make([]entity.ArchiveBatch, 0, len(wire))
	for _, w := range wire {
		batches = append(batches, entity.ArchiveBatch{
			BatchID:   string(w.BatchID),
			CreatedAt: w.CreatedAt,
			Ventas:    int64(w.Ventas),
			Ingresos:  w.Ingresos.Decimal,
			Ganancia:  w.Ganancia.Decimal,
		})
	}
	return batches, nil
}

type batchDetailWire struct {
	ProductoID    entero `json:"producto_id"`
	Nombre        string `json:"nombre"`
	CantidadTotal entero `json:"cantidad_total"`
	Ingresos      monto  `json:"ingresos"`
	Costos        monto  `json:"costos"`
	Ganancia      monto  `json:"ganancia"`
}

// BatchDetail devuelve el resumen por producto de un lote archivado.
func (c *Client) BatchDetail(ctx context.Context, batchID string) ([]entity.ArchiveBatchDetail, error) {
	var wire []batchDetailWire
	path := "/archive/batches/" + url.PathEscape(batchID)
	if err := c.get(ctx, path, nil, &wire); err != nil {
		return nil, fmt.Errorf("detalle de batch %s: %w", batchID, err)
	}

	details := make([]entity.ArchiveBatchDetail, 0, len(wire))
	for _, w := range wire {
		details = append(details, entity.ArchiveBatchDetail{
			ProductoID:    int64(w.ProductoID),
			Nombre:        w.Nombre,
			CantidadTotal: int64(w.CantidadTotal),
			Ingresos:      w.Ingresos.Decimal,
			Costos:        w.Costos.Decimal,
			Ganancia:      w.Ganancia.Decimal,
		})
	}
	return details, nil
}

// RunArchive dispara una corrida de archivado en el backend. batchSize <= 0
// deja que el backend use su tamaño por defecto.
func (c *Client) RunArchive(ctx context.Context, batchSize int) error {
	q := url.Values{}
	if batchSize > 0 {
		q.Set("batch_size", strconv.Itoa(batchSize))
	}
	if err := c.post(ctx, "/archive/run", q, nil, nil); err != nil {
		return fmt.Errorf("correr archivado: %w", err)
	}
	return nil
}

// DeleteBatch elimina el resumen de un lote archivado.
func (c *Client) DeleteBatch(ctx context.Context, batchID string) error {
	if err := c.delete(ctx, "/archive/batches/"+url.PathEscape(batchID), nil); err != nil {
		return fmt.Errorf("eliminar batch %s: %w", batchID, err)
	}
	return nil
}

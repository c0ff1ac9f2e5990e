package posapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Empasex/mini-pos-admin/internal/domain"
	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/internal/infrastructure/posapi"
	"github.com/Empasex/mini-pos-admin/pkg/config"
	"github.com/Empasex/mini-pos-admin/pkg/logger"
)

func newTestClient(srv *httptest.Server, serviceToken string) *posapi.Client {
	return posapi.New(config.POSConfig{
		BaseURL: srv.URL + "/api",
		Token:   serviceToken,
		Timeout: 5,
	}, logger.New(logger.Config{Level: "disabled"}))
}

// El backend serializa los campos de forma inconsistente (número, string,
// null); el cliente debe decodificar todo sin error, degradando a cero.
func TestListSales_DecodificacionTolerante(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sales/", r.URL.Path)
		fmt.Fprint(w, `[
			{"id":"7","producto_id":2,"nombre":"Café americano","cantidad":"2","total":"12.50","hora":"2025-09-01 10:00:00","transaction_id":123},
			{"id":8,"producto_id":null,"nombre":"Huérfana","cantidad":null,"total":"no-numérico","hora":"","transaction_id":null}
		]`)
	}))
	defer srv.Close()

	lines, err := newTestClient(srv, "").ListSales(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, int64(7), lines[0].ID, "id como string se decodifica")
	assert.Equal(t, int64(2), lines[0].ProductoID)
	assert.Equal(t, int64(2), lines[0].Cantidad)
	assert.True(t, lines[0].Total.Equal(decimal.NewFromFloat(12.5)))
	assert.Equal(t, "123", lines[0].TransactionID, "transaction_id numérico se lee como texto")

	assert.Equal(t, int64(0), lines[1].ProductoID, "null degrada a cero")
	assert.Equal(t, int64(0), lines[1].Cantidad)
	assert.True(t, lines[1].Total.IsZero(), "monto no numérico degrada a cero")
	assert.Equal(t, "", lines[1].TransactionID)
}

func TestClient_AuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, "[]")
	}))
	defer srv.Close()

	t.Run("sin token de caller usa el de servicio", func(t *testing.T) {
		c := newTestClient(srv, "svc-token")
		_, err := c.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer svc-token", gotAuth)
	})

	t.Run("el token del caller tiene prioridad", func(t *testing.T) {
		c := newTestClient(srv, "svc-token")
		ctx := posapi.WithToken(context.Background(), "caller-token")
		_, err := c.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bearer caller-token", gotAuth)
	})

	t.Run("sin token alguno no se envía header", func(t *testing.T) {
		c := newTestClient(srv, "")
		_, err := c.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "", gotAuth)
	})
}

func TestClient_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrUnauthorized},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusInternalServerError, domain.ErrUpstream},
		{http.StatusBadGateway, domain.ErrUpstream},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			_, err := newTestClient(srv, "").ListProducts(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMetricsSeries_QueryParams(t *testing.T) {
	var gotPeriod, gotLast string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/archive/metrics/series", r.URL.Path)
		gotPeriod = r.URL.Query().Get("period")
		gotLast = r.URL.Query().Get("last")
		fmt.Fprint(w, `[{"period":"2025-W35","ingresos":"200","ganancia":90,"items":9}]`)
	}))
	defer srv.Close()

	metrics, err := newTestClient(srv, "").MetricsSeries(context.Background(), entity.GranularityWeek, 4)
	require.NoError(t, err)

	assert.Equal(t, "week", gotPeriod)
	assert.Equal(t, "4", gotLast)

	require.Len(t, metrics, 1)
	assert.Equal(t, "2025-W35", metrics[0].Period)
	assert.True(t, metrics[0].Ingresos.Equal(decimal.NewFromInt(200)))
	assert.True(t, metrics[0].Ganancia.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, int64(9), metrics[0].Items)
}

func TestCreateSale_EnviaJSON(t *testing.T) {
	var gotBody posapi.CreateSaleRequest
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sales/", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newTestClient(srv, "").CreateSale(context.Background(), posapi.CreateSaleRequest{ProductoID: 3, Cantidad: 2})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, int64(3), gotBody.ProductoID)
	assert.Equal(t, int64(2), gotBody.Cantidad)
}

func TestDeleteBatch(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestClient(srv, "").DeleteBatch(context.Background(), "2025-09-01")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/archive/batches/2025-09-01", gotPath)
}

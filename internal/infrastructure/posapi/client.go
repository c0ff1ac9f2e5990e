// Package posapi implementa el cliente HTTP hacia el backend Mini-POS.
//
// El cliente es de solo lectura para el motor de reportes (productos, ventas,
// series de métricas del archivo) más los proxies de registro de venta y
// mantenimiento del archivo. El transporte y los reintentos son
// responsabilidad del http.Client subyacente; aquí solo se inyecta el Bearer
// y se mapean los estados de error.
package posapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Empasex/mini-pos-admin/internal/domain"
	"github.com/Empasex/mini-pos-admin/pkg/config"
	"github.com/Empasex/mini-pos-admin/pkg/logger"
)

type ctxKey int

const tokenKey ctxKey = iota

// WithToken devuelve un contexto con el Bearer del caller; el cliente lo
// reenvía al backend POS en lugar del token de servicio.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, token)
}

func tokenFrom(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey).(string); ok {
		return v
	}
	return ""
}

// Client cliente del backend Mini-POS.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	serviceToken string
	log          *logger.Logger
}

// New construye el cliente. La URL base ya viene normalizada (termina en /api).
func New(cfg config.POSConfig, log *logger.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		serviceToken: cfg.Token,
		log:          log,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("posapi: serializar body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("posapi: construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posapi: %s %s: %w: %w", method, path, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("posapi: %s %s: status %d: %w", method, path, resp.StatusCode, domain.ErrUnauthorized)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("posapi: %s %s: %w", method, path, domain.ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("respuesta de error del backend POS")
		return fmt.Errorf("posapi: %s %s: status %d (%s): %w",
			method, path, resp.StatusCode, strings.TrimSpace(string(snippet)), domain.ErrUpstream)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("posapi: decodificar respuesta de %s: %w: %w", path, domain.ErrUpstream, err)
	}
	return nil
}

func (c *Client) token(ctx context.Context) string {
	if t := tokenFrom(ctx); t != "" {
		return t
	}
	return c.serviceToken
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

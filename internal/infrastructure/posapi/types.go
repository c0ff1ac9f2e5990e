package posapi

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// El backend serializa montos y cantidades de forma inconsistente: a veces
// número JSON, a veces string, a veces null. Estos tipos de wire decodifican
// de forma tolerante: cualquier valor no numérico se lee como cero, nunca
// como error (política de degradación del motor ante datos malformados).

// monto es un decimal tolerante en el wire.
type monto struct {
	decimal.Decimal
}

func (m *monto) UnmarshalJSON(b []byte) error {
	s := cleanScalar(b)
	if s == "" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		m.Decimal = decimal.Zero
		return nil
	}
	m.Decimal = d
	return nil
}

// entero es un int64 tolerante en el wire; trunca decimales.
type entero int64

func (e *entero) UnmarshalJSON(b []byte) error {
	s := cleanScalar(b)
	if s == "" {
		*e = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*e = entero(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*e = entero(int64(f))
		return nil
	}
	*e = 0
	return nil
}

// texto acepta string, número o null (el transaction_id llega en cualquiera
// de los tres).
type texto string

func (t *texto) UnmarshalJSON(b []byte) error {
	*t = texto(cleanScalar(b))
	return nil
}

func cleanScalar(b []byte) string {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	if s == "null" {
		return ""
	}
	return s
}

// Package format concentra el formateo de fechas y montos que comparten la
// API y los exports, además de la normalización de timestamps del backend POS.
package format

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var offsetRe = regexp.MustCompile(`[+\-]\d{2}:\d{2}$`)

// layouts aceptados tras normalizar; el backend a veces omite segundos.
var horaLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02Z07:00",
}

// ParseHora normaliza y parsea los timestamps que devuelve el backend POS,
// típicamente "YYYY-MM-DD HH:MM:SS(.ffffff)" sin separador T ni zona horaria.
// Reglas: el primer espacio se convierte en "T"; si no hay indicador de zona
// (Z o ±hh:mm) se asume UTC.
func ParseHora(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("format: hora vacía")
	}
	if !strings.Contains(s, "T") {
		s = strings.Replace(s, " ", "T", 1)
	}
	if !strings.HasSuffix(s, "Z") && !strings.HasSuffix(s, "z") && !offsetRe.MatchString(s) {
		s += "Z"
	}
	for _, layout := range horaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("format: hora no reconocida: %q", raw)
}

// FormatDate devuelve la fecha en formato dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateTime devuelve fecha y hora en formato dd/mm/yyyy HH:MM.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

var currencyPrinter = message.NewPrinter(language.MustParse("es-PE"))

// Currency formatea un monto en soles con separador de miles y 2 decimales,
// ej. "S/ 1,234.56". Los montos se manejan como decimal en todo el sistema;
// la conversión a float ocurre solo en este punto de presentación.
func Currency(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return currencyPrinter.Sprintf("S/ %v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

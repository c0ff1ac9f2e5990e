// Package report implementa el motor de agregación de ventas por buckets de
// tiempo: agrupación de líneas en ventas lógicas, agregación de ingresos/
// costos/ganancia y etiquetado legible de periodos día/semana/mes.
//
// Todo el paquete es puro sobre sus entradas: sin I/O, sin estado compartido
// y sin errores ante datos malformados (siempre hay un fallback documentado).
package report

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/Empasex/mini-pos-admin/internal/domain/entity"
	"github.com/Empasex/mini-pos-admin/pkg/format"
)

var (
	dayRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dayRangeRe = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}).*?(\d{4}-\d{2}-\d{2})`)
	// acepta "2025-W35", "2025-35", "2025 sem 35", etc.
	yearWeekRe = regexp.MustCompile(`(?i)(\d{4})\D*W?(\d{1,2})`)
	// acepta "W35" o "35" sin año
	weekOnlyRe = regexp.MustCompile(`(?i)W?(\d{1,2})`)
	monthRe    = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// PeriodLabeler convierte identificadores de periodo del archivo en etiquetas
// legibles. Es una función total: un formato no reconocido devuelve el
// identificador tal cual, nunca un error.
type PeriodLabeler struct {
	now func() time.Time // inyectable para tests; las semanas sin año usan el año actual
}

// NewPeriodLabeler construye el labeler con el reloj del sistema.
func NewPeriodLabeler() *PeriodLabeler {
	return &PeriodLabeler{now: time.Now}
}

// NewPeriodLabelerAt construye el labeler con un reloj fijo.
func NewPeriodLabelerAt(now func() time.Time) *PeriodLabeler {
	return &PeriodLabeler{now: now}
}

// Label produce la etiqueta del periodo según la granularidad:
//   - day:   "dd/mm/yyyy", o "dd/mm/yyyy — dd/mm/yyyy" si el string trae dos fechas
//   - week:  "lunes — domingo" de la semana ISO-8601 ("2025-W35", "W35", "35", ...)
//   - month: "enero 2025" para "YYYY-M[M]"
//
// Cualquier formato no reconocido degrada al identificador sin cambios.
func (pl *PeriodLabeler) Label(periodID string, g entity.Granularity) string {
	if periodID == "" {
		return periodID
	}

	switch g {
	case entity.GranularityWeek:
		return pl.weekLabel(periodID)
	case entity.GranularityDay:
		return dayLabel(periodID)
	case entity.GranularityMonth:
		return monthLabel(periodID)
	}
	return periodID
}

func dayLabel(periodID string) string {
	if dayRe.MatchString(periodID) {
		if d, err := time.Parse("2006-01-02", periodID); err == nil {
			return format.FormatDate(d)
		}
		return periodID
	}
	// rangos tipo "2025-01-01_to_2025-01-07"
	if m := dayRangeRe.FindStringSubmatch(periodID); m != nil {
		a, errA := time.Parse("2006-01-02", m[1])
		b, errB := time.Parse("2006-01-02", m[2])
		if errA == nil && errB == nil {
			return format.FormatDate(a) + " — " + format.FormatDate(b)
		}
	}
	return periodID
}

func (pl *PeriodLabeler) weekLabel(periodID string) string {
	year := pl.now().Year()
	week := -1

	if m := yearWeekRe.FindStringSubmatch(periodID); m != nil {
		year, _ = strconv.Atoi(m[1])
		week, _ = strconv.Atoi(m[2])
	} else if m := weekOnlyRe.FindStringSubmatch(periodID); m != nil {
		week, _ = strconv.Atoi(m[1])
	}
	if week < 0 {
		return periodID
	}

	start := isoWeekMonday(week, year)
	end := start.AddDate(0, 0, 6)
	return format.FormatDate(start) + " — " + format.FormatDate(end)
}

func monthLabel(periodID string) string {
	m := monthRe.FindStringSubmatch(periodID)
	if m == nil {
		return periodID
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return periodID
	}
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

// isoWeekMonday devuelve el lunes de la semana ISO `week` del año `year`:
// el lunes de la semana 1 es el lunes de la semana que contiene el 4 de enero.
func isoWeekMonday(week, year int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	day := int(jan4.Weekday()) // 0=domingo
	if day == 0 {
		day = 7
	}
	return jan4.AddDate(0, 0, (week-1)*7-(day-1))
}

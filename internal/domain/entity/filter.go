package entity

// Modos de filtro del módulo de reportes.
const (
	FiltroHoy    = "hoy"
	FiltroSemana = "semana"
	FiltroMes    = "mes"
)

const (
	maxWeekRange    = 8 // máximo 2 meses hacia atrás
	fixedMonthRange = 6
)

var validDayRanges = map[int]bool{1: true, 7: true, 14: true, 21: true, 28: true}

// ReportFilter es la selección de periodo del usuario. Los rangos fuera de lo
// permitido se corrigen en Normalize en vez de rechazarse.
type ReportFilter struct {
	Modo      string // hoy | semana | mes
	DayRange  int    // 1, 7, 14, 21, 28 (solo modo hoy)
	WeekRange int    // 1..8 (solo modo semana)
}

// Normalize devuelve una copia con modo y rangos dentro de los valores
// soportados: modo desconocido cae a "hoy", DayRange inválido cae a 1 y
// WeekRange se recorta a [1, 8].
func (f ReportFilter) Normalize() ReportFilter {
	switch f.Modo {
	case FiltroHoy, FiltroSemana, FiltroMes:
	default:
		f.Modo = FiltroHoy
	}
	if !validDayRanges[f.DayRange] {
		f.DayRange = 1
	}
	if f.WeekRange < 1 {
		f.WeekRange = 1
	}
	if f.WeekRange > maxWeekRange {
		f.WeekRange = maxWeekRange
	}
	return f
}

// UsesRawSales indica si el filtro se resuelve con ventas crudas del día
// (modo A) en vez de la serie archivada (modo B).
func (f ReportFilter) UsesRawSales() bool {
	return f.Modo == FiltroHoy && f.DayRange == 1
}

// Granularity devuelve el tamaño de bucket de la serie a pedir en modo B.
func (f ReportFilter) Granularity() Granularity {
	switch f.Modo {
	case FiltroSemana:
		return GranularityWeek
	case FiltroMes:
		return GranularityMonth
	default:
		return GranularityDay
	}
}

// SeriesLength devuelve cuántos buckets pedir a la serie en modo B.
func (f ReportFilter) SeriesLength() int {
	switch f.Modo {
	case FiltroSemana:
		return f.WeekRange
	case FiltroMes:
		return fixedMonthRange
	default:
		return f.DayRange
	}
}

package domain

import (
	"fmt"
	"time"
)

type PeriodKind string

const (
	PeriodAllTime PeriodKind = "all_time"
	PeriodMonth   PeriodKind = "month"
	PeriodRange   PeriodKind = "range"
)

// PeriodFilter restringe pedidos pela data de criação. Os limites de mês são calculados em UTC.
type PeriodFilter struct {
	Kind  PeriodKind
	Year  int
	Month int
	Start *time.Time
	End   *time.Time
}

func AllTime() PeriodFilter {
	return PeriodFilter{Kind: PeriodAllTime}
}

func ForMonth(year, month int) PeriodFilter {
	return PeriodFilter{Kind: PeriodMonth, Year: year, Month: month}
}

// ForRange monta um intervalo com limites opcionais; o dia final é incluído por inteiro
func ForRange(start, end *time.Time) PeriodFilter {
	return PeriodFilter{Kind: PeriodRange, Start: start, End: end}
}

func (p PeriodFilter) Validate() error {
	switch p.Kind {
	case PeriodAllTime:
		return nil
	case PeriodMonth:
		if p.Year <= 0 {
			return newValidationError("year", "must be positive")
		}
		if p.Month < 1 || p.Month > 12 {
			return newValidationError("month", "must be between 1 and 12")
		}
		return nil
	case PeriodRange:
		if p.Start != nil && p.End != nil && p.End.Before(*p.Start) {
			return newValidationError("end_date", "must not be before start_date")
		}
		return nil
	default:
		return newValidationError("period", fmt.Sprintf("unknown kind %q", p.Kind))
	}
}

// Bounds devolve o intervalo [from, to) do filtro; nil indica limite aberto
func (p PeriodFilter) Bounds() (from, to *time.Time) {
	switch p.Kind {
	case PeriodMonth:
		start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		return &start, &end
	case PeriodRange:
		if p.Start != nil {
			s := startOfDay(*p.Start)
			from = &s
		}
		if p.End != nil {
			e := startOfDay(*p.End).AddDate(0, 0, 1)
			to = &e
		}
		return from, to
	default:
		return nil, nil
	}
}

// Contains indica se o instante pertence ao período
func (p PeriodFilter) Contains(t time.Time) bool {
	from, to := p.Bounds()
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(*to) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

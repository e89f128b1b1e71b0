package domain

import (
	"math"
	"time"
)

// WorkingDay representa um dia útil (segunda a sábado) do mês da meta
type WorkingDay struct {
	DayOfMonth int    `json:"day_of_month"`
	Weekday    string `json:"weekday"`
}

// CalendarResponse é a visão do calendário de um mês usada na distribuição diária da meta
type CalendarResponse struct {
	Year        int          `json:"year"`
	Month       int          `json:"month"`
	WorkingDays []WorkingDay `json:"working_days"`
	Total       int          `json:"total"`
}

// WorkingDays retorna todos os dias do mês, exceto domingos, em ordem crescente.
// month é 1-indexado; um mês fora de 1..12 resulta em lista vazia.
func WorkingDays(year, month int) []WorkingDay {
	days := make([]WorkingDay, 0, 27)
	if month < 1 || month > 12 {
		return days
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Sunday {
			continue
		}

		days = append(days, WorkingDay{
			DayOfMonth: day.Day(),
			Weekday:    day.Weekday().String(),
		})
	}

	return days
}

// DailyTarget é o valor indicativo por dia útil. Apenas informativo, nunca persistido.
func DailyTarget(totalPacks int, days []WorkingDay) int {
	if len(days) == 0 {
		return 0
	}
	return int(math.Round(float64(totalPacks) / float64(len(days))))
}

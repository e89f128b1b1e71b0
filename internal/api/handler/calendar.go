package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
)

// GetWorkingDays lista os dias úteis (segunda a sábado) do mês
func GetWorkingDays() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		year, err := strconv.Atoi(query.Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro year inválido", nil)
			return
		}

		month, err := strconv.Atoi(query.Get("month"))
		if err != nil || month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro month deve estar entre 1 e 12", nil)
			return
		}

		days := domain.WorkingDays(year, month)
		writeJSON(w, http.StatusOK, domain.CalendarResponse{
			Year:        year,
			Month:       month,
			WorkingDays: days,
			Total:       len(days),
		})
	}
}

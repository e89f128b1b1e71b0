package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/revenue"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
	"github.com/vfg2006/supplier-performance-api/pkg/utils"
)

// GetSupplierRevenue agrega a receita do fornecedor.
// ?year&month filtra um mês, ?start_date&end_date um intervalo e sem parâmetros todo o histórico.
func GetSupplierRevenue(service revenue.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filter, ok := periodFilterFromQuery(w, r)
		if !ok {
			return
		}

		summary, err := service.AggregateRevenue(r.Context(), supplierID, filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func periodFilterFromQuery(w http.ResponseWriter, r *http.Request) (domain.PeriodFilter, bool) {
	query := r.URL.Query()
	yearParam, monthParam := query.Get("year"), query.Get("month")
	startParam, endParam := query.Get("start_date"), query.Get("end_date")

	switch {
	case yearParam != "" || monthParam != "":
		year, yearErr := strconv.Atoi(yearParam)
		month, monthErr := strconv.Atoi(monthParam)
		if yearErr != nil || monthErr != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros year e month devem ser informados juntos", nil)
			return domain.PeriodFilter{}, false
		}
		return domain.ForMonth(year, month), true

	case startParam != "" || endParam != "":
		start, err := utils.ParseDate(startParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de start_date inválido. Use YYYY-MM-DD", nil)
			return domain.PeriodFilter{}, false
		}
		end, err := utils.ParseDate(endParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de end_date inválido. Use YYYY-MM-DD", nil)
			return domain.PeriodFilter{}, false
		}
		return domain.ForRange(start, end), true

	default:
		return domain.AllTime(), true
	}
}

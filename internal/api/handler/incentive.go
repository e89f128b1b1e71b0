package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/incentivizing"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
	"github.com/vfg2006/supplier-performance-api/pkg/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func CreateIncentive(service incentivizing.IncentiveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateIncentiveRequest
		if !decodeBody(w, r, &req) {
			return
		}

		summary, err := service.CreateIncentive(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, summary)
	}
}

// GetIncentive devolve o incentivo do mês já conciliado com a receita
func GetIncentive(service incentivizing.IncentiveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID, year, month, ok := periodParams(w, r)
		if !ok {
			return
		}

		summary, err := service.GetIncentive(r.Context(), supplierID, year, month)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func UpdateIncentive(service incentivizing.IncentiveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID, year, month, ok := periodParams(w, r)
		if !ok {
			return
		}

		var patch domain.IncentivePatch
		if !decodeBody(w, r, &patch) {
			return
		}

		summary, err := service.UpdateIncentive(r.Context(), supplierID, year, month, &patch)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func DeleteIncentive(service incentivizing.IncentiveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteIncentive(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListIncentives(service incentivizing.IncentiveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID, year, month, ok := listFilters(w, r)
		if !ok {
			return
		}

		summaries, err := service.ListIncentives(r.Context(), domain.IncentiveFilters{
			SupplierID: supplierID,
			Year:       year,
			Month:      month,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}

// GetIncentiveReport devolve a conciliação de todos os fornecedores no mês
func GetIncentiveReport(service incentivizing.IncentiveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := reportMonth(w, r)
		if !ok {
			return
		}

		summaries, err := service.MonthlyReport(r.Context(), year, month)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		revenueTotal, calculatedTotal, paidTotal := incentivizing.ReportTotals(summaries)
		writeJSON(w, http.StatusOK, map[string]any{
			"year":                   year,
			"month":                  month,
			"incentives":             summaries,
			"total_revenue":          revenueTotal,
			"total_calculated":       calculatedTotal,
			"total_actual_paid":      paidTotal,
			"suppliers_with_payment": countPaid(summaries),
		})
	}
}

// ExportIncentiveReport gera a planilha XLSX da conciliação do mês
func ExportIncentiveReport(service incentivizing.IncentiveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := reportMonth(w, r)
		if !ok {
			return
		}

		summaries, err := service.MonthlyReport(r.Context(), year, month)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		var buf bytes.Buffer
		if err := incentivizing.WriteMonthlyReport(&buf, year, month, summaries); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar planilha de incentivos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", incentivizing.ReportFilename(year, month)))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar planilha")
		}
	}
}

func reportMonth(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	query := r.URL.Query()

	year, yearErr := strconv.Atoi(query.Get("year"))
	month, monthErr := strconv.Atoi(query.Get("month"))
	if yearErr != nil || monthErr != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros year e month são obrigatórios", nil)
		return 0, 0, false
	}

	return year, month, true
}

func countPaid(summaries []*domain.IncentiveSummary) int {
	count := 0
	for _, summary := range summaries {
		if summary.ActualIncentivePaid != nil {
			count++
		}
	}
	return count
}

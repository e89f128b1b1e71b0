package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/targeting"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
	"github.com/vfg2006/supplier-performance-api/pkg/utils"
)

// ValidateTarget devolve as somas e flags de uma meta sem persistir
func ValidateTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateTargetRequest
		if !decodeBody(w, r, &req) {
			return
		}

		validation, err := service.Validate(&req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, validation)
	}
}

func CreateTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateTargetRequest
		if !decodeBody(w, r, &req) {
			return
		}

		target, err := service.CreateTarget(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, target)
	}
}

func GetTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID, year, month, ok := periodParams(w, r)
		if !ok {
			return
		}

		target, err := service.GetTarget(r.Context(), supplierID, year, month)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, target)
	}
}

func UpdateTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID, year, month, ok := periodParams(w, r)
		if !ok {
			return
		}

		var patch domain.TargetPatch
		if !decodeBody(w, r, &patch) {
			return
		}

		target, err := service.UpdateTarget(r.Context(), supplierID, year, month, &patch)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, target)
	}
}

func DeleteTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTarget(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListSupplierTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		targets, err := service.ListSupplierTargets(r.Context(), supplierID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, targets)
	}
}

func ListTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID, year, month, ok := listFilters(w, r)
		if !ok {
			return
		}

		targets, err := service.ListTargets(r.Context(), domain.TargetFilters{
			SupplierID: supplierID,
			Year:       year,
			Month:      month,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, targets)
	}
}

// listFilters lê os filtros opcionais supplier_id, year e month da query
func listFilters(w http.ResponseWriter, r *http.Request) (*string, *int, *int, bool) {
	query := r.URL.Query()

	year, err := utils.ParseOptionalInt(query.Get("year"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro year inválido", nil)
		return nil, nil, nil, false
	}

	month, err := utils.ParseOptionalInt(query.Get("month"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro month inválido", nil)
		return nil, nil, nil, false
	}

	var supplierID *string
	if value := query.Get("supplier_id"); value != "" {
		supplierID = &value
	}

	return supplierID, year, month, true
}

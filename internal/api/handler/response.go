package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/incentivizing"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/revenue"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/targeting"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
	"github.com/vfg2006/supplier-performance-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody rejeita corpos malformados e números fracionários em campos inteiros
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo de requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", err.Error())
		return false
	}
	return true
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("Erro ao processar requisição")

	var validationErr *domain.ValidationError
	details := map[string]any{}
	if errors.As(err, &validationErr) {
		details["field"] = validationErr.Field
		details["reason"] = validationErr.Reason
	}

	var (
		targetErr    *targeting.TargetError
		incentiveErr *incentivizing.IncentiveError
		revenueErr   *revenue.RevenueError
		authErr      *authenticating.AuthError
	)

	switch {
	case errors.As(err, &targetErr):
		apiErrors.WriteError(w, targetErr.Code, targetErr.Error(), nonEmpty(details))
	case errors.As(err, &incentiveErr):
		apiErrors.WriteError(w, incentiveErr.Code, incentiveErr.Error(), nonEmpty(details))
	case errors.As(err, &revenueErr):
		apiErrors.WriteError(w, revenueErr.Code, revenueErr.Error(), nonEmpty(details))
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	case errors.Is(err, domain.ErrValidation):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nonEmpty(details))
	case errors.Is(err, domain.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrDuplicateKey):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateKey, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func nonEmpty(details map[string]any) any {
	if len(details) == 0 {
		return nil
	}
	return details
}

// periodParams lê fornecedor, ano e mês dos parâmetros de rota
func periodParams(w http.ResponseWriter, r *http.Request) (string, int, int, bool) {
	params := httprouter.ParamsFromContext(r.Context())

	supplierID := params.ByName("id")
	year, yearErr := strconv.Atoi(params.ByName("year"))
	month, monthErr := strconv.Atoi(params.ByName("month"))
	if supplierID == "" || yearErr != nil || monthErr != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fornecedor, ano e mês devem ser informados na rota", nil)
		return "", 0, 0, false
	}

	return supplierID, year, month, true
}

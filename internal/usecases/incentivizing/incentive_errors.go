package incentivizing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/revenue"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
)

var (
	ErrSaveIncentive   = errors.New("falha ao salvar incentivo")
	ErrFetchIncentives = errors.New("falha ao buscar incentivos")
	ErrDeleteIncentive = errors.New("falha ao remover incentivo")
	ErrFetchRevenue    = errors.New("falha ao calcular receita do fornecedor")
	ErrBuildReport     = errors.New("falha ao gerar relatório de incentivos")
	ErrGenerateID      = errors.New("falha ao gerar identificador")
)

// IncentiveError é um erro com contexto adicional para operações de incentivo
type IncentiveError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	SupplierID string // Fornecedor envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *IncentiveError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IncentiveError) Unwrap() error {
	return e.Err
}

func NewIncentiveError(baseErr error, code string, supplierID string, details string) *IncentiveError {
	return &IncentiveError{
		Err:        baseErr,
		Code:       code,
		SupplierID: supplierID,
		Details:    details,
	}
}

// newDomainError traduz erros de validação e de repositório para o código da API
func newDomainError(err error, fallback error, supplierID string) *IncentiveError {
	var revenueErr *revenue.RevenueError
	if errors.As(err, &revenueErr) {
		return NewIncentiveError(err, revenueErr.Code, supplierID, revenueErr.Details)
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return NewIncentiveError(err, apiErrors.ErrInvalidRequest, supplierID, "")
	case errors.Is(err, domain.ErrDuplicateKey):
		return NewIncentiveError(err, apiErrors.ErrDuplicateKey, supplierID, "")
	case errors.Is(err, domain.ErrNotFound):
		return NewIncentiveError(err, apiErrors.ErrNotFound, supplierID, "")
	default:
		return NewIncentiveError(fallback, apiErrors.ErrDatabaseOperation, supplierID, err.Error())
	}
}

package targeting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
)

var (
	ErrSaveTarget   = errors.New("falha ao salvar meta")
	ErrFetchTargets = errors.New("falha ao buscar metas")
	ErrDeleteTarget = errors.New("falha ao remover meta")
	ErrGenerateID   = errors.New("falha ao gerar identificador")
)

// TargetError é um erro com contexto adicional para operações de metas
type TargetError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	SupplierID string // Fornecedor envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *TargetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

func NewTargetError(baseErr error, code string, supplierID string, details string) *TargetError {
	return &TargetError{
		Err:        baseErr,
		Code:       code,
		SupplierID: supplierID,
		Details:    details,
	}
}

// newDomainError traduz erros de validação e de repositório para o código da API
func newDomainError(err error, supplierID string) *TargetError {
	switch {
	case errors.Is(err, domain.ErrInvalidCategoryKind):
		return NewTargetError(err, apiErrors.ErrInvalidCategory, supplierID, "")
	case errors.Is(err, domain.ErrTotalMismatch):
		return NewTargetError(err, apiErrors.ErrTotalMismatch, supplierID, "")
	case errors.Is(err, domain.ErrValidation):
		return NewTargetError(err, apiErrors.ErrInvalidRequest, supplierID, "")
	case errors.Is(err, domain.ErrDuplicateKey):
		return NewTargetError(err, apiErrors.ErrDuplicateKey, supplierID, "")
	case errors.Is(err, domain.ErrNotFound):
		return NewTargetError(err, apiErrors.ErrNotFound, supplierID, "")
	default:
		return NewTargetError(ErrSaveTarget, apiErrors.ErrDatabaseOperation, supplierID, err.Error())
	}
}

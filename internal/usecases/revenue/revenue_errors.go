package revenue

import (
	"errors"
	"fmt"
)

var (
	ErrFetchOrders   = errors.New("falha ao buscar pedidos do fornecedor")
	ErrFetchSupplier = errors.New("falha ao buscar fornecedor")
)

// RevenueError é um erro com contexto adicional para a agregação de receita
type RevenueError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	SupplierID string // Fornecedor envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *RevenueError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RevenueError) Unwrap() error {
	return e.Err
}

func NewRevenueError(baseErr error, code string, supplierID string, details string) *RevenueError {
	return &RevenueError{
		Err:        baseErr,
		Code:       code,
		SupplierID: supplierID,
		Details:    details,
	}
}

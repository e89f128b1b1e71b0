package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio compartilhados entre casos de uso e repositórios
var (
	ErrValidation          = errors.New("validation error")
	ErrInvalidCategoryKind = fmt.Errorf("%w: invalid category kind", ErrValidation)
	ErrTotalMismatch       = fmt.Errorf("%w: sub-targets do not add up to the total", ErrValidation)

	ErrNotFound         = errors.New("record not found")
	ErrSupplierNotFound = fmt.Errorf("supplier %w", ErrNotFound)
	ErrDuplicateKey     = errors.New("record already exists for supplier and period")
)

// ValidationError identifica o campo rejeitado e o motivo
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: ErrValidation}
}

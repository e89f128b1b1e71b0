package domain

import (
	"fmt"
	"time"
)

// WeeksPerMonth é o número fixo de slots semanais de uma meta mensal
const WeeksPerMonth = 4

// ValidationMode define se divergências entre total e sub-metas bloqueiam o salvamento
type ValidationMode string

const (
	ValidationModeAdvisory ValidationMode = "advisory"
	ValidationModeStrict   ValidationMode = "strict"
)

// ParseValidationMode converte o valor de configuração, usando advisory como padrão
func ParseValidationMode(value string) (ValidationMode, error) {
	switch ValidationMode(value) {
	case "", ValidationModeAdvisory:
		return ValidationModeAdvisory, nil
	case ValidationModeStrict:
		return ValidationModeStrict, nil
	default:
		return ValidationModeAdvisory, fmt.Errorf("modo de validação inválido: %s", value)
	}
}

// SupplierTarget é a meta mensal de packs de um fornecedor. (SupplierID, Year, Month) é imutável.
type SupplierTarget struct {
	ID               string           `json:"id"`
	SupplierID       string           `json:"supplier_id"`
	Year             int              `json:"year"`
	Month            int              `json:"month"`
	TotalPacksTarget int              `json:"total_packs_target"`
	WeeklyTargets    []int            `json:"weekly_targets"`
	CategoryTargets  map[Category]int `json:"category_targets,omitempty"`
	Notes            string           `json:"notes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// CreateTargetRequest é o corpo de criação de uma meta
type CreateTargetRequest struct {
	SupplierID       string           `json:"supplier_id"`
	Year             int              `json:"year"`
	Month            int              `json:"month"`
	TotalPacksTarget int              `json:"total_packs_target"`
	WeeklyTargets    []int            `json:"weekly_targets"`
	CategoryTargets  map[Category]int `json:"category_targets,omitempty"`
	Notes            string           `json:"notes"`
}

// TargetPatch substitui todos os campos mutáveis de uma meta existente
type TargetPatch struct {
	TotalPacksTarget int              `json:"total_packs_target"`
	WeeklyTargets    []int            `json:"weekly_targets"`
	CategoryTargets  map[Category]int `json:"category_targets,omitempty"`
	Notes            string           `json:"notes"`
}

// TargetFilters filtra a listagem de metas; campos nil não restringem
type TargetFilters struct {
	SupplierID *string
	Year       *int
	Month      *int
}

// TargetValidation traz as somas das decomposições e se batem com o total
type TargetValidation struct {
	Total              int  `json:"total"`
	WeeklySum          int  `json:"weekly_sum"`
	CategorySum        int  `json:"category_sum"`
	WeeklyMatches      bool `json:"weekly_matches"`
	CategoryMatches    bool `json:"category_matches"`
	HasCategoryTargets bool `json:"has_category_targets"`
}

// Matches indica se todas as decomposições presentes batem com o total
func (v *TargetValidation) Matches() bool {
	return v.WeeklyMatches && v.CategoryMatches
}

// TargetResponse é a meta acompanhada da validação e da distribuição diária indicativa
type TargetResponse struct {
	*SupplierTarget
	Validation  *TargetValidation `json:"validation"`
	WorkingDays int               `json:"working_days"`
	DailyTarget int               `json:"daily_target"`
}

// ValidateTarget confere as sub-metas semanais e por categoria contra o total.
//
// Números negativos, quantidade de semanas diferente de 4 e categorias fora do catálogo
// são rejeitados. A divergência de somas só vira erro no modo strict; no modo advisory
// ela é devolvida apenas nas flags.
func ValidateTarget(
	total int,
	weekly []int,
	category map[Category]int,
	catalog CategoryCatalog,
	mode ValidationMode,
) (*TargetValidation, error) {
	if catalog == nil {
		catalog = DefaultCategoryCatalog()
	}

	if total < 0 {
		return nil, newValidationError("total_packs_target", "must not be negative")
	}

	if len(weekly) != WeeksPerMonth {
		return nil, newValidationError("weekly_targets", fmt.Sprintf("must have exactly %d weeks, got %d", WeeksPerMonth, len(weekly)))
	}

	validation := &TargetValidation{Total: total}

	for i, packs := range weekly {
		if packs < 0 {
			return nil, newValidationError(fmt.Sprintf("weekly_targets[%d]", i), "must not be negative")
		}
		validation.WeeklySum += packs
	}
	validation.WeeklyMatches = validation.WeeklySum == total

	validation.HasCategoryTargets = len(category) > 0
	for code, packs := range category {
		if !catalog.IsValid(code) {
			return nil, &ValidationError{
				Field:  "category_targets",
				Reason: fmt.Sprintf("unknown category %q", code),
				Err:    ErrInvalidCategoryKind,
			}
		}
		if packs < 0 {
			return nil, newValidationError(fmt.Sprintf("category_targets[%s]", code), "must not be negative")
		}
		validation.CategorySum += packs
	}
	validation.CategoryMatches = !validation.HasCategoryTargets || validation.CategorySum == total

	if mode == ValidationModeStrict && !validation.Matches() {
		return validation, &ValidationError{
			Field:  "total_packs_target",
			Reason: fmt.Sprintf("weekly sum %d / category sum %d differ from total %d", validation.WeeklySum, validation.CategorySum, total),
			Err:    ErrTotalMismatch,
		}
	}

	return validation, nil
}

// ValidatePeriodKey confere a chave natural fornecedor/ano/mês
func ValidatePeriodKey(supplierID string, year, month int) error {
	if supplierID == "" {
		return newValidationError("supplier_id", "is required")
	}
	if year <= 0 {
		return newValidationError("year", "must be positive")
	}
	if month < 1 || month > 12 {
		return newValidationError("month", "must be between 1 and 12")
	}
	return nil
}

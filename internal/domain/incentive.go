package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPlaces é a precisão em casas decimais da moeda
const MoneyPlaces = 2

var (
	hundred       = decimal.NewFromInt(100)
	maxPercentage = hundred
	// maxMoney é o primeiro valor que não cabe em NUMERIC(14,2)
	maxMoney = decimal.New(1, 12)
)

// ReconciliationStatus descreve o resultado da conciliação entre o incentivo calculado e o pago
type ReconciliationStatus string

const (
	ReconciliationNotApplicable     ReconciliationStatus = "not_applicable"
	ReconciliationDivisionUndefined ReconciliationStatus = "division_undefined"
	ReconciliationOverpaid          ReconciliationStatus = "overpaid"
	ReconciliationUnderpaid         ReconciliationStatus = "underpaid"
	ReconciliationBalanced          ReconciliationStatus = "balanced"
)

// SupplierIncentive é o registro persistido do percentual de incentivo de um fornecedor no mês
type SupplierIncentive struct {
	ID                  string           `json:"id"`
	SupplierID          string           `json:"supplier_id"`
	Year                int              `json:"year"`
	Month               int              `json:"month"`
	IncentivePercentage decimal.Decimal  `json:"incentive_percentage"`
	ActualIncentivePaid *decimal.Decimal `json:"actual_incentive_paid"`
	Notes               string           `json:"notes"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// CreateIncentiveRequest é o corpo de criação de um incentivo
type CreateIncentiveRequest struct {
	SupplierID          string           `json:"supplier_id"`
	Year                int              `json:"year"`
	Month               int              `json:"month"`
	IncentivePercentage decimal.Decimal  `json:"incentive_percentage"`
	ActualIncentivePaid *decimal.Decimal `json:"actual_incentive_paid"`
	Notes               string           `json:"notes"`
}

// IncentivePatch substitui os campos mutáveis de um incentivo
type IncentivePatch struct {
	IncentivePercentage decimal.Decimal  `json:"incentive_percentage"`
	ActualIncentivePaid *decimal.Decimal `json:"actual_incentive_paid"`
	Notes               string           `json:"notes"`
}

type IncentiveFilters struct {
	SupplierID *string
	Year       *int
	Month      *int
}

// Reconciliation é a diferença entre o incentivo pago e o calculado.
// Variance e VariancePercentage são nil quando não se aplicam.
type Reconciliation struct {
	Variance           *decimal.Decimal     `json:"variance"`
	VariancePercentage *decimal.Decimal     `json:"variance_percentage"`
	Status             ReconciliationStatus `json:"status"`
}

// IncentiveSummary é o incentivo com os campos derivados recalculados na leitura
type IncentiveSummary struct {
	*SupplierIncentive
	SupplierName        string          `json:"supplier_name,omitempty"`
	SupplierCode        string          `json:"supplier_code,omitempty"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalOrders         int             `json:"total_orders"`
	CalculatedIncentive decimal.Decimal `json:"calculated_incentive"`
	Reconciliation
}

// ValidateIncentive confere percentual e valor pago antes da persistência.
// Ambos têm no máximo duas casas decimais, como nas colunas NUMERIC.
func ValidateIncentive(percentage decimal.Decimal, actualPaid *decimal.Decimal) error {
	if err := validatePercentage(percentage); err != nil {
		return err
	}
	if !hasMoneyPlaces(percentage) {
		return newValidationError("incentive_percentage", "must have at most 2 decimal places")
	}

	if actualPaid == nil {
		return nil
	}
	if actualPaid.IsNegative() {
		return newValidationError("actual_incentive_paid", "must not be negative")
	}
	if actualPaid.GreaterThanOrEqual(maxMoney) {
		return newValidationError("actual_incentive_paid", "must be less than 1000000000000")
	}
	if !hasMoneyPlaces(*actualPaid) {
		return newValidationError("actual_incentive_paid", "must have at most 2 decimal places")
	}
	return nil
}

func validatePercentage(percentage decimal.Decimal) error {
	if percentage.IsNegative() || percentage.GreaterThan(maxPercentage) {
		return newValidationError("incentive_percentage", "must be between 0 and 100")
	}
	return nil
}

func hasMoneyPlaces(value decimal.Decimal) bool {
	return value.Equal(value.Truncate(MoneyPlaces))
}

// CalculateIncentive devolve revenue * percentage / 100 arredondado para 2 casas (meio para cima)
func CalculateIncentive(percentage, revenue decimal.Decimal) (decimal.Decimal, error) {
	if err := validatePercentage(percentage); err != nil {
		return decimal.Zero, err
	}
	if revenue.IsNegative() {
		return decimal.Zero, newValidationError("revenue", "must not be negative")
	}

	return revenue.Mul(percentage).Div(hundred).Round(MoneyPlaces), nil
}

// Reconcile compara o valor efetivamente pago com o calculado.
// Variância positiva significa que o fornecedor pagou mais que o calculado.
// Com incentivo calculado zero o percentual fica indefinido e o status sinaliza isso.
func Reconcile(calculated decimal.Decimal, actualPaid *decimal.Decimal) Reconciliation {
	if actualPaid == nil {
		return Reconciliation{Status: ReconciliationNotApplicable}
	}

	variance := actualPaid.Sub(calculated).Round(MoneyPlaces)
	result := Reconciliation{Variance: &variance}

	if calculated.IsZero() {
		result.Status = ReconciliationDivisionUndefined
		return result
	}

	percentage := variance.Div(calculated).Mul(hundred).Round(MoneyPlaces)
	result.VariancePercentage = &percentage

	switch variance.Sign() {
	case 1:
		result.Status = ReconciliationOverpaid
	case -1:
		result.Status = ReconciliationUnderpaid
	default:
		result.Status = ReconciliationBalanced
	}

	return result
}

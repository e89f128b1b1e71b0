package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		weekly   []int
		category map[Category]int
		mode     ValidationMode
		want     *TargetValidation
		wantErr  error
	}{
		{
			name:   "Semanas batem com o total",
			total:  1000,
			weekly: []int{250, 250, 250, 250},
			mode:   ValidationModeAdvisory,
			want: &TargetValidation{
				Total: 1000, WeeklySum: 1000, WeeklyMatches: true, CategoryMatches: true,
			},
		},
		{
			name:   "Divergência semanal apenas sinalizada no modo advisory",
			total:  1000,
			weekly: []int{300, 300, 300, 300},
			mode:   ValidationModeAdvisory,
			want: &TargetValidation{
				Total: 1000, WeeklySum: 1200, WeeklyMatches: false, CategoryMatches: true,
			},
		},
		{
			name:     "Categorias somadas e comparadas",
			total:    1000,
			weekly:   []int{250, 250, 250, 250},
			category: map[Category]int{CategoryCSD: 600, CategoryWater: 300},
			mode:     ValidationModeAdvisory,
			want: &TargetValidation{
				Total: 1000, WeeklySum: 1000, CategorySum: 900, WeeklyMatches: true,
				CategoryMatches: false, HasCategoryTargets: true,
			},
		},
		{
			name:    "Divergência bloqueada no modo strict",
			total:   1000,
			weekly:  []int{300, 300, 300, 300},
			mode:    ValidationModeStrict,
			wantErr: ErrTotalMismatch,
		},
		{
			name:     "Categoria fora do catálogo",
			total:    100,
			weekly:   []int{25, 25, 25, 25},
			category: map[Category]int{"BEER": 100},
			mode:     ValidationModeAdvisory,
			wantErr:  ErrInvalidCategoryKind,
		},
		{
			name:    "Total negativo",
			total:   -1,
			weekly:  []int{0, 0, 0, 0},
			wantErr: ErrValidation,
		},
		{
			name:    "Semana negativa",
			total:   100,
			weekly:  []int{100, -10, 5, 5},
			wantErr: ErrValidation,
		},
		{
			name:    "Quantidade de semanas diferente de 4",
			total:   100,
			weekly:  []int{50, 50},
			wantErr: ErrValidation,
		},
		{
			name:     "Categoria negativa",
			total:    100,
			weekly:   []int{25, 25, 25, 25},
			category: map[Category]int{CategoryJuice: -5},
			wantErr:  ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTarget(tt.total, tt.weekly, tt.category, DefaultCategoryCatalog(), tt.mode)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.True(t, errors.Is(err, ErrValidation))

				var validationErr *ValidationError
				assert.True(t, errors.As(err, &validationErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateTarget_StrictReturnsSums(t *testing.T) {
	got, err := ValidateTarget(1000, []int{300, 300, 300, 300}, nil, nil, ValidationModeStrict)

	require.ErrorIs(t, err, ErrTotalMismatch)
	require.NotNil(t, got)
	assert.Equal(t, 1200, got.WeeklySum)
	assert.False(t, got.Matches())
}

func TestValidateTarget_CustomCatalog(t *testing.T) {
	catalog := NewCategoryCatalog(CategoryWater)

	_, err := ValidateTarget(100, []int{25, 25, 25, 25}, map[Category]int{CategoryCSD: 100}, catalog, ValidationModeAdvisory)
	assert.ErrorIs(t, err, ErrInvalidCategoryKind)

	got, err := ValidateTarget(100, []int{25, 25, 25, 25}, map[Category]int{CategoryWater: 100}, catalog, ValidationModeAdvisory)
	require.NoError(t, err)
	assert.True(t, got.Matches())
}

func TestParseValidationMode(t *testing.T) {
	mode, err := ParseValidationMode("")
	require.NoError(t, err)
	assert.Equal(t, ValidationModeAdvisory, mode)

	mode, err = ParseValidationMode("strict")
	require.NoError(t, err)
	assert.Equal(t, ValidationModeStrict, mode)

	_, err = ParseValidationMode("lenient")
	assert.Error(t, err)
}

func TestValidatePeriodKey(t *testing.T) {
	assert.NoError(t, ValidatePeriodKey("sup_1", 2025, 3))
	assert.ErrorIs(t, ValidatePeriodKey("", 2025, 3), ErrValidation)
	assert.ErrorIs(t, ValidatePeriodKey("sup_1", 0, 3), ErrValidation)
	assert.ErrorIs(t, ValidatePeriodKey("sup_1", 2025, 13), ErrValidation)
}

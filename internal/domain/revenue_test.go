package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(supplierID, amount string, status OrderStatus, createdAt time.Time) *SupplierOrder {
	return &SupplierOrder{
		SupplierID:  supplierID,
		FinalAmount: decimal.RequireFromString(amount),
		Status:      status,
		CreatedAt:   createdAt,
	}
}

func TestAggregateOrders(t *testing.T) {
	orders := []*SupplierOrder{
		order("sup_1", "500000", OrderStatusConfirmed, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)),
		order("sup_1", "700000", OrderStatusSettled, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)),
		order("sup_1", "300000", OrderStatusConfirmed, time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)),
		order("sup_1", "999", OrderStatusCancelled, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		order("sup_1", "250.50", OrderStatusConfirmed, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
		order("sup_1", "100", OrderStatusPending, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
		order("sup_2", "42", OrderStatusConfirmed, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
		order("sup_1", "10", OrderStatusSettled, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
	}

	t.Run("Mês específico", func(t *testing.T) {
		summary := AggregateOrders("sup_1", ForMonth(2025, 3), orders)

		assert.Equal(t, "1500000.00", summary.TotalRevenue.StringFixed(2))
		assert.Equal(t, 3, summary.TotalOrders)
		require.Len(t, summary.Breakdown, 1)
		assert.Equal(t, 2025, summary.Breakdown[0].Year)
		assert.Equal(t, 3, summary.Breakdown[0].Month)
		assert.Equal(t, 3, summary.Breakdown[0].OrderCount)
	})

	t.Run("Todo o período com detalhamento mensal crescente", func(t *testing.T) {
		summary := AggregateOrders("sup_1", AllTime(), orders)

		assert.Equal(t, "1500260.50", summary.TotalRevenue.StringFixed(2))
		assert.Equal(t, 5, summary.TotalOrders)
		require.Len(t, summary.Breakdown, 3)
		assert.Equal(t, 2024, summary.Breakdown[0].Year)
		assert.Equal(t, 12, summary.Breakdown[0].Month)
		assert.Equal(t, 1, summary.Breakdown[1].Month)
		assert.Equal(t, "250.50", summary.Breakdown[1].Revenue.StringFixed(2))
		assert.Equal(t, 3, summary.Breakdown[2].Month)
		assert.Equal(t, 3, summary.Breakdown[2].OrderCount)
	})

	t.Run("Intervalo inclui o dia final inteiro e omite detalhamento", func(t *testing.T) {
		start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

		summary := AggregateOrders("sup_1", ForRange(&start, &end), orders)

		assert.Equal(t, "1000000.00", summary.TotalRevenue.StringFixed(2))
		assert.Equal(t, 2, summary.TotalOrders)
		assert.Nil(t, summary.Breakdown)
	})

	t.Run("Intervalo aberto no início", func(t *testing.T) {
		end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

		summary := AggregateOrders("sup_1", ForRange(nil, &end), orders)

		assert.Equal(t, "260.50", summary.TotalRevenue.StringFixed(2))
		assert.Equal(t, 2, summary.TotalOrders)
	})

	t.Run("Sem pedidos no período", func(t *testing.T) {
		summary := AggregateOrders("sup_1", ForMonth(2023, 7), orders)

		assert.True(t, summary.TotalRevenue.IsZero())
		assert.Equal(t, 0, summary.TotalOrders)
		require.Len(t, summary.Breakdown, 1)
		assert.Equal(t, 0, summary.Breakdown[0].OrderCount)
	})

	t.Run("Idempotente", func(t *testing.T) {
		first := AggregateOrders("sup_1", AllTime(), orders)
		second := AggregateOrders("sup_1", AllTime(), orders)

		assert.Equal(t, first, second)
	})
}

func TestPeriodFilter_Validate(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, AllTime().Validate())
	assert.NoError(t, ForMonth(2025, 12).Validate())
	assert.ErrorIs(t, ForMonth(2025, 0).Validate(), ErrValidation)
	assert.ErrorIs(t, ForRange(&start, &end).Validate(), ErrValidation)
	assert.NoError(t, ForRange(nil, nil).Validate())
	assert.ErrorIs(t, PeriodFilter{Kind: "weekly"}.Validate(), ErrValidation)
}

func TestPeriodFilter_Bounds(t *testing.T) {
	from, to := ForMonth(2025, 12).Bounds()

	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *to)

	from, to = AllTime().Bounds()
	assert.Nil(t, from)
	assert.Nil(t, to)
}

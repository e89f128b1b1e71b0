package revenue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/supplier-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func marchOrders() []*domain.SupplierOrder {
	return []*domain.SupplierOrder{
		{ID: "o1", SupplierID: "sup-1", FinalAmount: decimal.NewFromInt(500000), Status: domain.OrderStatusConfirmed, CreatedAt: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
		{ID: "o2", SupplierID: "sup-1", FinalAmount: decimal.NewFromInt(700000), Status: domain.OrderStatusSettled, CreatedAt: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)},
		{ID: "o3", SupplierID: "sup-1", FinalAmount: decimal.NewFromInt(300000), Status: domain.OrderStatusConfirmed, CreatedAt: time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)},
	}
}

func TestService_AggregateRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSuppliers := mocks.NewMockSupplierRepository(ctrl)
	mockOrders := mocks.NewMockSupplierOrderRepository(ctrl)
	service := NewService(mockSuppliers, mockOrders)

	march := domain.ForMonth(2025, 3)

	tests := []struct {
		name      string
		supplier  string
		filter    domain.PeriodFilter
		setup     func()
		wantTotal string
		wantCode  string
		wantErr   error
	}{
		{
			name:     "Soma os pedidos de março",
			supplier: "sup-1",
			filter:   march,
			setup: func() {
				mockSuppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(&domain.Supplier{ID: "sup-1"}, nil)
				mockOrders.EXPECT().OrdersForSupplier(gomock.Any(), "sup-1", march).Return(marchOrders(), nil)
			},
			wantTotal: "1500000",
		},
		{
			name:     "Fornecedor sem pedidos retorna zero",
			supplier: "sup-1",
			filter:   march,
			setup: func() {
				mockSuppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(&domain.Supplier{ID: "sup-1"}, nil)
				mockOrders.EXPECT().OrdersForSupplier(gomock.Any(), "sup-1", march).Return(nil, nil)
			},
			wantTotal: "0",
		},
		{
			name:     "Fornecedor inexistente",
			supplier: "sup-x",
			filter:   march,
			setup: func() {
				mockSuppliers.EXPECT().GetByID(gomock.Any(), "sup-x").Return(nil, nil)
			},
			wantCode: apiErrors.ErrNotFound,
			wantErr:  domain.ErrSupplierNotFound,
		},
		{
			name:     "Período inválido",
			supplier: "sup-1",
			filter:   domain.ForMonth(2025, 13),
			setup:    func() {},
			wantCode: apiErrors.ErrInvalidRequest,
			wantErr:  domain.ErrValidation,
		},
		{
			name:     "Erro ao buscar pedidos",
			supplier: "sup-1",
			filter:   march,
			setup: func() {
				mockSuppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(&domain.Supplier{ID: "sup-1"}, nil)
				mockOrders.EXPECT().OrdersForSupplier(gomock.Any(), "sup-1", march).Return(nil, errors.New("timeout"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
			wantErr:  ErrFetchOrders,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			summary, err := service.AggregateRevenue(context.Background(), tt.supplier, tt.filter)

			if tt.wantCode != "" {
				var revenueErr *RevenueError
				require.True(t, errors.As(err, &revenueErr))
				assert.Equal(t, tt.wantCode, revenueErr.Code)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, summary)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, summary.TotalRevenue.String())
			require.Len(t, summary.Breakdown, 1)
			assert.Equal(t, 3, summary.Breakdown[0].Month)
		})
	}
}

func TestService_AggregateRevenue_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSuppliers := mocks.NewMockSupplierRepository(ctrl)
	mockOrders := mocks.NewMockSupplierOrderRepository(ctrl)
	service := NewService(mockSuppliers, mockOrders)

	mockSuppliers.EXPECT().GetByID(gomock.Any(), "sup-1").Return(&domain.Supplier{ID: "sup-1"}, nil).Times(2)
	mockOrders.EXPECT().OrdersForSupplier(gomock.Any(), "sup-1", domain.AllTime()).Return(marchOrders(), nil).Times(2)

	first, err := service.AggregateRevenue(context.Background(), "sup-1", domain.AllTime())
	require.NoError(t, err)
	second, err := service.AggregateRevenue(context.Background(), "sup-1", domain.AllTime())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_AggregateRevenueBySupplier(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockSuppliers := mocks.NewMockSupplierRepository(ctrl)
	mockOrders := mocks.NewMockSupplierOrderRepository(ctrl)
	service := NewService(mockSuppliers, mockOrders)

	march := domain.ForMonth(2025, 3)
	orders := append(marchOrders(), &domain.SupplierOrder{
		ID: "o4", SupplierID: "sup-2", FinalAmount: decimal.NewFromInt(1000), Status: domain.OrderStatusSettled, CreatedAt: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	mockOrders.EXPECT().OrdersForSuppliers(gomock.Any(), []string{"sup-1", "sup-2", "sup-3"}, march).Return(orders, nil).Times(1)

	summaries, err := service.AggregateRevenueBySupplier(context.Background(), []string{"sup-1", "sup-2", "sup-3"}, march)

	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "1500000", summaries["sup-1"].TotalRevenue.String())
	assert.Equal(t, 3, summaries["sup-1"].TotalOrders)
	assert.Equal(t, "1000", summaries["sup-2"].TotalRevenue.String())
	assert.True(t, summaries["sup-3"].TotalRevenue.IsZero())

	empty, err := service.AggregateRevenueBySupplier(context.Background(), nil, march)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = service.AggregateRevenueBySupplier(context.Background(), []string{"sup-1"}, domain.ForMonth(2025, 13))
	var revenueErr *RevenueError
	require.ErrorAs(t, err, &revenueErr)
	assert.Equal(t, apiErrors.ErrInvalidRequest, revenueErr.Code)
}

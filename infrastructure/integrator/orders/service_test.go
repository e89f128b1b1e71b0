package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/supplier-performance-api/infrastructure/integrator/orders/ordersclient"
	"github.com/vfg2006/supplier-performance-api/infrastructure/integrator/orders/ordersdomain"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
)

type fakeClient struct {
	pages []*ordersdomain.OrdersPage
	err   error
	calls []ordersclient.ListOrdersParams
}

func (f *fakeClient) ListOrders(_ context.Context, params ordersclient.ListOrdersParams) (*ordersdomain.OrdersPage, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[params.Page-1], nil
}

func TestOrdersService_FetchOrders(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.FixedZone("WAT", 3600))

	t.Run("Percorre todas as páginas e descarta pedidos sem fornecedor", func(t *testing.T) {
		client := &fakeClient{pages: []*ordersdomain.OrdersPage{
			{Page: 1, TotalPages: 2, Data: []ordersdomain.Order{
				{ID: "o-1", SupplierCompanyID: "sup_1", FinalAmount: decimal.NewFromInt(500000), Status: "confirmed", CreatedAt: createdAt},
				{ID: "o-2", FinalAmount: decimal.NewFromInt(10), Status: "confirmed", CreatedAt: createdAt},
			}},
			{Page: 2, TotalPages: 2, Data: []ordersdomain.Order{
				{ID: "o-3", SupplierCompanyID: "sup_1", FinalAmount: decimal.NewFromInt(1000000), Status: "settled", CreatedAt: createdAt},
				{ID: "o-4", SupplierCompanyID: "sup_1", FinalAmount: decimal.NewFromInt(7), Status: "pending", CreatedAt: createdAt},
			}},
		}}

		orders, err := New(client).FetchOrders(context.Background(), from, to)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Len(t, client.calls, 2)
		assert.Equal(t, []string{"confirmed", "settled"}, client.calls[0].Statuses)
		assert.Equal(t, "o-1", orders[0].ExternalID)
		assert.NotEmpty(t, orders[0].ID)
		assert.Equal(t, domain.OrderStatusSettled, orders[1].Status)
		assert.Equal(t, time.UTC, orders[0].CreatedAt.Location())
	})

	t.Run("Pedido repetido entre páginas fica com a última versão", func(t *testing.T) {
		client := &fakeClient{pages: []*ordersdomain.OrdersPage{
			{Page: 1, TotalPages: 2, Data: []ordersdomain.Order{
				{ID: "o-1", SupplierCompanyID: "sup_1", FinalAmount: decimal.NewFromInt(100), Status: "confirmed", CreatedAt: createdAt},
				{ID: "o-2", SupplierCompanyID: "sup_1", FinalAmount: decimal.NewFromInt(200), Status: "confirmed", CreatedAt: createdAt},
			}},
			{Page: 2, TotalPages: 2, Data: []ordersdomain.Order{
				{ID: "o-1", SupplierCompanyID: "sup_1", FinalAmount: decimal.NewFromInt(150), Status: "settled", CreatedAt: createdAt},
			}},
		}}

		orders, err := New(client).FetchOrders(context.Background(), from, to)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "o-1", orders[0].ExternalID)
		assert.Equal(t, "150", orders[0].FinalAmount.String())
		assert.Equal(t, domain.OrderStatusSettled, orders[0].Status)
		assert.Equal(t, "o-2", orders[1].ExternalID)
	})

	t.Run("Limite de páginas atingido", func(t *testing.T) {
		pages := make([]*ordersdomain.OrdersPage, maxPages)
		for i := range pages {
			pages[i] = &ordersdomain.OrdersPage{Page: i + 1, TotalPages: maxPages + 1}
		}
		client := &fakeClient{pages: pages}

		orders, err := New(client).FetchOrders(context.Background(), from, to)

		assert.Nil(t, orders)
		assert.ErrorIs(t, err, ErrTooManyPages)
		assert.Len(t, client.calls, maxPages)
	})

	t.Run("Erro do backend de pedidos", func(t *testing.T) {
		client := &fakeClient{err: errors.New("timeout")}

		orders, err := New(client).FetchOrders(context.Background(), from, to)

		assert.Nil(t, orders)
		assert.ErrorContains(t, err, "timeout")
	})
}

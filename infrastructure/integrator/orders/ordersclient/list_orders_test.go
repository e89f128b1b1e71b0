package ordersclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/supplier-performance-api/internal/config"
)

func TestOrdersClient_ListOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "confirmed,settled", r.URL.Query().Get("status"))
		assert.Equal(t, "2025-03-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2025-03-31", r.URL.Query().Get("to"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"id": "o-1", "supplierCompanyId": "sup_1", "finalAmount": "500000.50", "status": "confirmed", "createdAt": "2025-03-02T10:00:00Z"}
			],
			"page": 1,
			"totalPages": 1
		}`))
	}))
	defer server.Close()

	client := NewClient(config.OrdersAPI{URL: server.URL + "/api/v1", AccessToken: "token-123"})

	page, err := client.ListOrders(context.Background(), ListOrdersParams{
		Statuses: []string{"confirmed", "settled"},
		From:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "sup_1", page.Data[0].SupplierCompanyID)
	assert.Equal(t, "500000.50", page.Data[0].FinalAmount.StringFixed(2))
	assert.Equal(t, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC), page.Data[0].CreatedAt.UTC())
	assert.Equal(t, 1, page.TotalPages)
}

func TestOrdersClient_ListOrders_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(config.OrdersAPI{URL: server.URL})

	page, err := client.ListOrders(context.Background(), ListOrdersParams{})

	assert.Nil(t, page)
	assert.ErrorContains(t, err, "502")
}

package ordersclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/supplier-performance-api/infrastructure/integrator/orders/ordersdomain"
	"github.com/vfg2006/supplier-performance-api/internal/config"
)

const defaultTimeout = 45 * time.Second

type Client interface {
	ListOrders(ctx context.Context, params ListOrdersParams) (*ordersdomain.OrdersPage, error)
}

type OrdersClient struct {
	httpClient *http.Client
	config     config.OrdersAPI
}

func NewClient(cfg config.OrdersAPI) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &OrdersClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

package ordersclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/supplier-performance-api/infrastructure/integrator/orders/ordersdomain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pageSize = 200

type ListOrdersParams struct {
	Statuses []string
	From     time.Time
	To       time.Time
	Page     int
}

func (c *OrdersClient) ListOrders(ctx context.Context, params ListOrdersParams) (*ordersdomain.OrdersPage, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/orders")

	page := params.Page
	if page < 1 {
		page = 1
	}

	query := endpoint.Query()
	query.Set("status", strings.Join(params.Statuses, ","))
	query.Set("from", params.From.Format(time.DateOnly))
	query.Set("to", params.To.Format(time.DateOnly))
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(pageSize))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response ordersdomain.OrdersPage
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}

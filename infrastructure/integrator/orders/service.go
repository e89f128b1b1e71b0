package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/supplier-performance-api/infrastructure/integrator/orders/ordersclient"
	"github.com/vfg2006/supplier-performance-api/infrastructure/integrator/orders/ordersdomain"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/pkg/log"
	"github.com/vfg2006/supplier-performance-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// maxPages limita a paginação caso o backend devolva totalPages inconsistente
const maxPages = 500

var ErrTooManyPages = errors.New("backend de pedidos excedeu o limite de páginas")

type OrdersIntegrator interface {
	FetchOrders(ctx context.Context, from, to time.Time) ([]*domain.SupplierOrder, error)
}

type OrdersService struct {
	Client ordersclient.Client
}

func New(client ordersclient.Client) OrdersIntegrator {
	return &OrdersService{
		Client: client,
	}
}

// FetchOrders busca todas as páginas de pedidos confirmados e liquidados criados entre from e to (inclusive).
// Um pedido repetido entre páginas aparece uma única vez, com a última versão recebida.
// Se o limite de páginas for atingido antes do fim nada é devolvido.
func (s *OrdersService) FetchOrders(ctx context.Context, from, to time.Time) ([]*domain.SupplierOrder, error) {
	statuses := make([]string, 0, len(domain.RevenueStatuses))
	for _, status := range domain.RevenueStatuses {
		statuses = append(statuses, string(status))
	}

	orders := make([]*domain.SupplierOrder, 0)
	positions := make(map[string]int)
	for page := 1; ; page++ {
		if page > maxPages {
			return nil, fmt.Errorf("%w: %d", ErrTooManyPages, maxPages)
		}

		resp, err := s.Client.ListOrders(ctx, ordersclient.ListOrdersParams{
			Statuses: statuses,
			From:     from,
			To:       to,
			Page:     page,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar página %d de pedidos: %w", page, err)
		}

		for _, order := range resp.Data {
			supplierOrder, err := toSupplierOrder(order)
			if err != nil {
				return nil, err
			}
			if supplierOrder == nil {
				log.L.WithField("external_id", order.ID).Debug("orders: pedido ignorado na sincronização")
				continue
			}

			if i, seen := positions[supplierOrder.ExternalID]; seen {
				log.L.WithField("external_id", order.ID).Debug("orders: pedido repetido entre páginas")
				orders[i] = supplierOrder
				continue
			}
			positions[supplierOrder.ExternalID] = len(orders)
			orders = append(orders, supplierOrder)
		}

		if page >= resp.TotalPages {
			break
		}
	}

	return orders, nil
}

// toSupplierOrder devolve nil para pedidos sem fornecedor ou com status que não conta como receita
func toSupplierOrder(order ordersdomain.Order) (*domain.SupplierOrder, error) {
	status := domain.OrderStatus(order.Status)
	if order.SupplierCompanyID == "" || !status.CountsAsRevenue() {
		return nil, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do pedido: %w", err)
	}

	return &domain.SupplierOrder{
		ID:          id,
		ExternalID:  order.ID,
		SupplierID:  order.SupplierCompanyID,
		FinalAmount: order.FinalAmount,
		Status:      status,
		CreatedAt:   order.CreatedAt.UTC(),
	}, nil
}

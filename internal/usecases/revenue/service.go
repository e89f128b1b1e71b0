package revenue

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/supplier-performance-api/infrastructure/repository"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
)

// OrderSource fornece os pedidos de um fornecedor já restritos ao período
type OrderSource interface {
	OrdersForSupplier(ctx context.Context, supplierID string, filter domain.PeriodFilter) ([]*domain.SupplierOrder, error)
	OrdersForSuppliers(ctx context.Context, supplierIDs []string, filter domain.PeriodFilter) ([]*domain.SupplierOrder, error)
}

type Aggregator interface {
	AggregateRevenue(ctx context.Context, supplierID string, filter domain.PeriodFilter) (*domain.RevenueSummary, error)
	AggregateRevenueBySupplier(ctx context.Context, supplierIDs []string, filter domain.PeriodFilter) (map[string]*domain.RevenueSummary, error)
}

type Service struct {
	supplierRepository repository.SupplierRepository
	orders             OrderSource
}

func NewService(supplierRepository repository.SupplierRepository, orders OrderSource) Aggregator {
	return &Service{
		supplierRepository: supplierRepository,
		orders:             orders,
	}
}

// AggregateRevenue soma a receita confirmada do fornecedor no período. Nenhum pedido é um resultado válido.
func (s *Service) AggregateRevenue(ctx context.Context, supplierID string, filter domain.PeriodFilter) (*domain.RevenueSummary, error) {
	if supplierID == "" {
		return nil, NewRevenueError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, supplierID, "supplier_id é obrigatório")
	}

	if err := filter.Validate(); err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrInvalidRequest, supplierID, "")
	}

	supplier, err := s.supplierRepository.GetByID(ctx, supplierID)
	if err != nil {
		logrus.WithError(err).WithField("supplier_id", supplierID).Error("erro ao buscar fornecedor")
		return nil, NewRevenueError(ErrFetchSupplier, apiErrors.ErrDatabaseOperation, supplierID, err.Error())
	}

	if supplier == nil {
		return nil, NewRevenueError(domain.ErrSupplierNotFound, apiErrors.ErrNotFound, supplierID, "")
	}

	orders, err := s.orders.OrdersForSupplier(ctx, supplierID, filter)
	if err != nil {
		logrus.WithError(err).WithField("supplier_id", supplierID).Error("erro ao buscar pedidos")
		return nil, NewRevenueError(ErrFetchOrders, apiErrors.ErrDatabaseOperation, supplierID, err.Error())
	}

	return domain.AggregateOrders(supplierID, filter, orders), nil
}

// AggregateRevenueBySupplier soma a receita de vários fornecedores com uma única consulta de pedidos.
// A existência dos fornecedores não é conferida; todo id pedido recebe um resumo, mesmo sem pedidos.
func (s *Service) AggregateRevenueBySupplier(ctx context.Context, supplierIDs []string, filter domain.PeriodFilter) (map[string]*domain.RevenueSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrInvalidRequest, "", "")
	}

	summaries := make(map[string]*domain.RevenueSummary, len(supplierIDs))
	if len(supplierIDs) == 0 {
		return summaries, nil
	}

	orders, err := s.orders.OrdersForSuppliers(ctx, supplierIDs, filter)
	if err != nil {
		logrus.WithError(err).WithField("suppliers", len(supplierIDs)).Error("erro ao buscar pedidos")
		return nil, NewRevenueError(ErrFetchOrders, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	bySupplier := make(map[string][]*domain.SupplierOrder, len(supplierIDs))
	for _, order := range orders {
		if order == nil {
			continue
		}
		bySupplier[order.SupplierID] = append(bySupplier[order.SupplierID], order)
	}

	for _, supplierID := range supplierIDs {
		summaries[supplierID] = domain.AggregateOrders(supplierID, filter, bySupplier[supplierID])
	}

	return summaries, nil
}

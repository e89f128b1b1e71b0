package incentivizing

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/supplier-performance-api/infrastructure/repository"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/revenue"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
	"github.com/vfg2006/supplier-performance-api/pkg/utils"
)

type IncentiveService interface {
	CreateIncentive(ctx context.Context, request *domain.CreateIncentiveRequest) (*domain.IncentiveSummary, error)
	UpdateIncentive(ctx context.Context, supplierID string, year, month int, patch *domain.IncentivePatch) (*domain.IncentiveSummary, error)
	DeleteIncentive(ctx context.Context, id string) error
	GetIncentive(ctx context.Context, supplierID string, year, month int) (*domain.IncentiveSummary, error)
	ListIncentives(ctx context.Context, filters domain.IncentiveFilters) ([]*domain.IncentiveSummary, error)
	MonthlyReport(ctx context.Context, year, month int) ([]*domain.IncentiveSummary, error)
}

type Service struct {
	incentiveRepository repository.IncentiveRepository
	supplierRepository  repository.SupplierRepository
	revenue             revenue.Aggregator
}

func NewService(
	incentiveRepository repository.IncentiveRepository,
	supplierRepository repository.SupplierRepository,
	revenueAggregator revenue.Aggregator,
) IncentiveService {
	return &Service{
		incentiveRepository: incentiveRepository,
		supplierRepository:  supplierRepository,
		revenue:             revenueAggregator,
	}
}

func (s *Service) CreateIncentive(ctx context.Context, request *domain.CreateIncentiveRequest) (*domain.IncentiveSummary, error) {
	if err := domain.ValidatePeriodKey(request.SupplierID, request.Year, request.Month); err != nil {
		return nil, newDomainError(err, ErrSaveIncentive, request.SupplierID)
	}

	if err := domain.ValidateIncentive(request.IncentivePercentage, request.ActualIncentivePaid); err != nil {
		return nil, newDomainError(err, ErrSaveIncentive, request.SupplierID)
	}

	supplier, err := s.supplierRepository.GetByID(ctx, request.SupplierID)
	if err != nil {
		return nil, NewIncentiveError(ErrSaveIncentive, apiErrors.ErrDatabaseOperation, request.SupplierID, err.Error())
	}
	if supplier == nil {
		return nil, NewIncentiveError(domain.ErrSupplierNotFound, apiErrors.ErrNotFound, request.SupplierID, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewIncentiveError(ErrGenerateID, apiErrors.ErrInternalServer, request.SupplierID, err.Error())
	}

	created, err := s.incentiveRepository.Create(ctx, &domain.SupplierIncentive{
		ID:                  id,
		SupplierID:          request.SupplierID,
		Year:                request.Year,
		Month:               request.Month,
		IncentivePercentage: request.IncentivePercentage,
		ActualIncentivePaid: request.ActualIncentivePaid,
		Notes:               request.Notes,
	})
	if err != nil {
		logrus.WithError(err).WithField("supplier_id", request.SupplierID).Error("erro ao criar incentivo")
		return nil, newDomainError(err, ErrSaveIncentive, request.SupplierID)
	}

	logrus.Infof("Incentivo %s criado para o fornecedor %s em %02d/%d", created.ID, created.SupplierID, created.Month, created.Year)

	return s.summarizeOne(ctx, created, supplier)
}

func (s *Service) UpdateIncentive(ctx context.Context, supplierID string, year, month int, patch *domain.IncentivePatch) (*domain.IncentiveSummary, error) {
	if err := domain.ValidatePeriodKey(supplierID, year, month); err != nil {
		return nil, newDomainError(err, ErrSaveIncentive, supplierID)
	}

	if err := domain.ValidateIncentive(patch.IncentivePercentage, patch.ActualIncentivePaid); err != nil {
		return nil, newDomainError(err, ErrSaveIncentive, supplierID)
	}

	updated, err := s.incentiveRepository.Update(ctx, supplierID, year, month, patch)
	if err != nil {
		logrus.WithError(err).WithField("supplier_id", supplierID).Error("erro ao atualizar incentivo")
		return nil, newDomainError(err, ErrSaveIncentive, supplierID)
	}

	supplier, err := s.supplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	return s.summarizeOne(ctx, updated, supplier)
}

func (s *Service) DeleteIncentive(ctx context.Context, id string) error {
	if id == "" {
		return NewIncentiveError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "", "id é obrigatório")
	}

	if err := s.incentiveRepository.Delete(ctx, id); err != nil {
		return newDomainError(err, ErrDeleteIncentive, "")
	}

	return nil
}

// GetIncentive devolve o incentivo do período com receita, incentivo calculado e conciliação recalculados
func (s *Service) GetIncentive(ctx context.Context, supplierID string, year, month int) (*domain.IncentiveSummary, error) {
	if err := domain.ValidatePeriodKey(supplierID, year, month); err != nil {
		return nil, newDomainError(err, ErrFetchIncentives, supplierID)
	}

	incentive, err := s.incentiveRepository.GetByKey(ctx, supplierID, year, month)
	if err != nil {
		return nil, NewIncentiveError(ErrFetchIncentives, apiErrors.ErrDatabaseOperation, supplierID, err.Error())
	}

	if incentive == nil {
		return nil, NewIncentiveError(domain.ErrNotFound, apiErrors.ErrNotFound, supplierID, "incentivo não cadastrado para o período")
	}

	supplier, err := s.supplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	return s.summarizeOne(ctx, incentive, supplier)
}

func (s *Service) ListIncentives(ctx context.Context, filters domain.IncentiveFilters) ([]*domain.IncentiveSummary, error) {
	incentives, err := s.incentiveRepository.List(ctx, filters)
	if err != nil {
		return nil, NewIncentiveError(ErrFetchIncentives, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return s.summarizeAll(ctx, incentives)
}

// MonthlyReport concilia todos os incentivos cadastrados no mês, com o nome de cada fornecedor
func (s *Service) MonthlyReport(ctx context.Context, year, month int) ([]*domain.IncentiveSummary, error) {
	if err := domain.ForMonth(year, month).Validate(); err != nil {
		return nil, newDomainError(err, ErrBuildReport, "")
	}

	incentives, err := s.incentiveRepository.List(ctx, domain.IncentiveFilters{Year: &year, Month: &month})
	if err != nil {
		return nil, NewIncentiveError(ErrFetchIncentives, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return s.summarizeAll(ctx, incentives)
}

func (s *Service) supplier(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepository.GetByID(ctx, supplierID)
	if err != nil {
		return nil, NewIncentiveError(ErrFetchIncentives, apiErrors.ErrDatabaseOperation, supplierID, err.Error())
	}
	if supplier == nil {
		return nil, NewIncentiveError(domain.ErrSupplierNotFound, apiErrors.ErrNotFound, supplierID, "")
	}
	return supplier, nil
}

func (s *Service) summarizeOne(ctx context.Context, incentive *domain.SupplierIncentive, supplier *domain.Supplier) (*domain.IncentiveSummary, error) {
	summaries, err := s.summarize(ctx, []*domain.SupplierIncentive{incentive}, map[string]*domain.Supplier{incentive.SupplierID: supplier})
	if err != nil {
		return nil, err
	}
	return summaries[0], nil
}

func (s *Service) summarizeAll(ctx context.Context, incentives []*domain.SupplierIncentive) ([]*domain.IncentiveSummary, error) {
	if len(incentives) == 0 {
		return []*domain.IncentiveSummary{}, nil
	}

	suppliers, err := s.supplierRepository.List(ctx, false)
	if err != nil {
		return nil, NewIncentiveError(ErrFetchIncentives, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	byID := make(map[string]*domain.Supplier, len(suppliers))
	for _, supplier := range suppliers {
		byID[supplier.ID] = supplier
	}

	return s.summarize(ctx, incentives, byID)
}

type incentiveMonth struct{ year, month int }

// summarize agrega a receita de cada mês com uma consulta por mês e recalcula incentivo e conciliação.
// Nada disso é persistido. A ordem dos incentivos é preservada.
func (s *Service) summarize(ctx context.Context, incentives []*domain.SupplierIncentive, suppliers map[string]*domain.Supplier) ([]*domain.IncentiveSummary, error) {
	months := make([]incentiveMonth, 0)
	supplierIDs := make(map[incentiveMonth][]string)
	for _, incentive := range incentives {
		key := incentiveMonth{incentive.Year, incentive.Month}
		if _, ok := supplierIDs[key]; !ok {
			months = append(months, key)
		}
		if !slices.Contains(supplierIDs[key], incentive.SupplierID) {
			supplierIDs[key] = append(supplierIDs[key], incentive.SupplierID)
		}
	}

	revenues := make(map[incentiveMonth]map[string]*domain.RevenueSummary, len(months))
	for _, key := range months {
		bySupplier, err := s.revenue.AggregateRevenueBySupplier(ctx, supplierIDs[key], domain.ForMonth(key.year, key.month))
		if err != nil {
			return nil, newDomainError(err, ErrFetchRevenue, "")
		}
		revenues[key] = bySupplier
	}

	summaries := make([]*domain.IncentiveSummary, 0, len(incentives))
	for _, incentive := range incentives {
		revenueSummary := revenues[incentiveMonth{incentive.Year, incentive.Month}][incentive.SupplierID]

		calculated, err := domain.CalculateIncentive(incentive.IncentivePercentage, revenueSummary.TotalRevenue)
		if err != nil {
			return nil, newDomainError(err, ErrFetchRevenue, incentive.SupplierID)
		}

		summary := &domain.IncentiveSummary{
			SupplierIncentive:   incentive,
			TotalRevenue:        revenueSummary.TotalRevenue.Round(domain.MoneyPlaces),
			TotalOrders:         revenueSummary.TotalOrders,
			CalculatedIncentive: calculated,
			Reconciliation:      domain.Reconcile(calculated, incentive.ActualIncentivePaid),
		}
		if supplier, ok := suppliers[incentive.SupplierID]; ok {
			summary.SupplierName = supplier.Name
			summary.SupplierCode = supplier.Code
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

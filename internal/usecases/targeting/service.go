package targeting

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/supplier-performance-api/infrastructure/repository"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/pkg/apiErrors"
	"github.com/vfg2006/supplier-performance-api/pkg/utils"
)

type TargetService interface {
	Validate(request *domain.CreateTargetRequest) (*domain.TargetValidation, error)
	CreateTarget(ctx context.Context, request *domain.CreateTargetRequest) (*domain.TargetResponse, error)
	UpdateTarget(ctx context.Context, supplierID string, year, month int, patch *domain.TargetPatch) (*domain.TargetResponse, error)
	DeleteTarget(ctx context.Context, id string) error
	GetTarget(ctx context.Context, supplierID string, year, month int) (*domain.TargetResponse, error)
	ListSupplierTargets(ctx context.Context, supplierID string) ([]*domain.TargetResponse, error)
	ListTargets(ctx context.Context, filters domain.TargetFilters) ([]*domain.TargetResponse, error)
}

type Service struct {
	targetRepository   repository.TargetRepository
	supplierRepository repository.SupplierRepository
	catalog            domain.CategoryCatalog
	mode               domain.ValidationMode
}

func NewService(
	targetRepository repository.TargetRepository,
	supplierRepository repository.SupplierRepository,
	catalog domain.CategoryCatalog,
	mode domain.ValidationMode,
) TargetService {
	if catalog == nil {
		catalog = domain.DefaultCategoryCatalog()
	}

	return &Service{
		targetRepository:   targetRepository,
		supplierRepository: supplierRepository,
		catalog:            catalog,
		mode:               mode,
	}
}

// Validate apenas confere as somas, sem persistir. Usa sempre o modo advisory para que o
// formulário receba as flags mesmo quando o salvamento seria bloqueado.
func (s *Service) Validate(request *domain.CreateTargetRequest) (*domain.TargetValidation, error) {
	validation, err := domain.ValidateTarget(
		request.TotalPacksTarget,
		request.WeeklyTargets,
		request.CategoryTargets,
		s.catalog,
		domain.ValidationModeAdvisory,
	)
	if err != nil {
		return nil, newDomainError(err, request.SupplierID)
	}
	return validation, nil
}

func (s *Service) CreateTarget(ctx context.Context, request *domain.CreateTargetRequest) (*domain.TargetResponse, error) {
	if err := domain.ValidatePeriodKey(request.SupplierID, request.Year, request.Month); err != nil {
		return nil, newDomainError(err, request.SupplierID)
	}

	validation, err := domain.ValidateTarget(request.TotalPacksTarget, request.WeeklyTargets, request.CategoryTargets, s.catalog, s.mode)
	if err != nil {
		return nil, newDomainError(err, request.SupplierID)
	}

	if err := s.ensureSupplier(ctx, request.SupplierID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewTargetError(ErrGenerateID, apiErrors.ErrInternalServer, request.SupplierID, err.Error())
	}

	created, err := s.targetRepository.Create(ctx, &domain.SupplierTarget{
		ID:               id,
		SupplierID:       request.SupplierID,
		Year:             request.Year,
		Month:            request.Month,
		TotalPacksTarget: request.TotalPacksTarget,
		WeeklyTargets:    request.WeeklyTargets,
		CategoryTargets:  request.CategoryTargets,
		Notes:            request.Notes,
	})
	if err != nil {
		logrus.WithError(err).WithField("supplier_id", request.SupplierID).Error("erro ao criar meta")
		return nil, newDomainError(err, request.SupplierID)
	}

	logrus.Infof("Meta %s criada para o fornecedor %s em %02d/%d", created.ID, created.SupplierID, created.Month, created.Year)

	return newTargetResponse(created, validation), nil
}

func (s *Service) UpdateTarget(ctx context.Context, supplierID string, year, month int, patch *domain.TargetPatch) (*domain.TargetResponse, error) {
	if err := domain.ValidatePeriodKey(supplierID, year, month); err != nil {
		return nil, newDomainError(err, supplierID)
	}

	validation, err := domain.ValidateTarget(patch.TotalPacksTarget, patch.WeeklyTargets, patch.CategoryTargets, s.catalog, s.mode)
	if err != nil {
		return nil, newDomainError(err, supplierID)
	}

	updated, err := s.targetRepository.Update(ctx, supplierID, year, month, patch)
	if err != nil {
		logrus.WithError(err).WithField("supplier_id", supplierID).Error("erro ao atualizar meta")
		return nil, newDomainError(err, supplierID)
	}

	return newTargetResponse(updated, validation), nil
}

func (s *Service) DeleteTarget(ctx context.Context, id string) error {
	if id == "" {
		return NewTargetError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "", "id é obrigatório")
	}

	if err := s.targetRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewTargetError(err, apiErrors.ErrNotFound, "", "")
		}
		return NewTargetError(ErrDeleteTarget, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return nil
}

func (s *Service) GetTarget(ctx context.Context, supplierID string, year, month int) (*domain.TargetResponse, error) {
	if err := domain.ValidatePeriodKey(supplierID, year, month); err != nil {
		return nil, newDomainError(err, supplierID)
	}

	target, err := s.targetRepository.GetByKey(ctx, supplierID, year, month)
	if err != nil {
		return nil, NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, supplierID, err.Error())
	}

	if target == nil {
		return nil, NewTargetError(domain.ErrNotFound, apiErrors.ErrNotFound, supplierID, "meta não cadastrada para o período")
	}

	return s.describe(target), nil
}

func (s *Service) ListSupplierTargets(ctx context.Context, supplierID string) ([]*domain.TargetResponse, error) {
	if supplierID == "" {
		return nil, NewTargetError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "", "supplier_id é obrigatório")
	}

	targets, err := s.targetRepository.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, supplierID, err.Error())
	}

	return s.describeAll(targets), nil
}

func (s *Service) ListTargets(ctx context.Context, filters domain.TargetFilters) ([]*domain.TargetResponse, error) {
	targets, err := s.targetRepository.List(ctx, filters)
	if err != nil {
		return nil, NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return s.describeAll(targets), nil
}

func (s *Service) ensureSupplier(ctx context.Context, supplierID string) error {
	supplier, err := s.supplierRepository.GetByID(ctx, supplierID)
	if err != nil {
		return NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, supplierID, err.Error())
	}
	if supplier == nil {
		return NewTargetError(domain.ErrSupplierNotFound, apiErrors.ErrNotFound, supplierID, "")
	}
	return nil
}

// describe recalcula as flags de validação de uma meta já persistida, sempre em modo advisory
func (s *Service) describe(target *domain.SupplierTarget) *domain.TargetResponse {
	validation, err := domain.ValidateTarget(target.TotalPacksTarget, target.WeeklyTargets, target.CategoryTargets, s.catalog, domain.ValidationModeAdvisory)
	if err != nil {
		logrus.WithError(err).Warnf("meta %s persistida com decomposição inválida", target.ID)
	}
	return newTargetResponse(target, validation)
}

func (s *Service) describeAll(targets []*domain.SupplierTarget) []*domain.TargetResponse {
	responses := make([]*domain.TargetResponse, 0, len(targets))
	for _, target := range targets {
		responses = append(responses, s.describe(target))
	}
	return responses
}

func newTargetResponse(target *domain.SupplierTarget, validation *domain.TargetValidation) *domain.TargetResponse {
	days := domain.WorkingDays(target.Year, target.Month)
	return &domain.TargetResponse{
		SupplierTarget: target,
		Validation:     validation,
		WorkingDays:    len(days),
		DailyTarget:    domain.DailyTarget(target.TotalPacksTarget, days),
	}
}

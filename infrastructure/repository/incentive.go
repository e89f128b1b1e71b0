package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/supplier-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
)

//go:generate mockgen -source=incentive.go -destination=mocks/incentive.go -package=mocks

const incentivesTable = "supplier_incentives"

var incentiveColumns = []string{
	"id",
	"supplier_id",
	"year",
	"month",
	"incentive_percentage",
	"actual_incentive_paid",
	"notes",
	"created_at",
	"updated_at",
}

type IncentiveRepository interface {
	Create(ctx context.Context, incentive *domain.SupplierIncentive) (*domain.SupplierIncentive, error)
	Update(ctx context.Context, supplierID string, year, month int, patch *domain.IncentivePatch) (*domain.SupplierIncentive, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.SupplierIncentive, error)
	GetByKey(ctx context.Context, supplierID string, year, month int) (*domain.SupplierIncentive, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierIncentive, error)
	List(ctx context.Context, filters domain.IncentiveFilters) ([]*domain.SupplierIncentive, error)
}

type incentiveRepository struct {
	conn *postgres.Connection
}

func NewIncentiveRepository(conn *postgres.Connection) IncentiveRepository {
	return &incentiveRepository{
		conn: conn,
	}
}

func nullableDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *value, Valid: true}
}

func scanIncentive(row scanner) (*domain.SupplierIncentive, error) {
	var incentive domain.SupplierIncentive
	var actualPaid decimal.NullDecimal

	if err := row.Scan(
		&incentive.ID,
		&incentive.SupplierID,
		&incentive.Year,
		&incentive.Month,
		&incentive.IncentivePercentage,
		&actualPaid,
		&incentive.Notes,
		&incentive.CreatedAt,
		&incentive.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if actualPaid.Valid {
		incentive.ActualIncentivePaid = &actualPaid.Decimal
	}

	return &incentive, nil
}

func (r *incentiveRepository) Create(ctx context.Context, incentive *domain.SupplierIncentive) (*domain.SupplierIncentive, error) {
	now := time.Now().UTC()
	query, args, err := squirrel.
		Insert(incentivesTable).
		Columns(incentiveColumns...).
		Values(
			incentive.ID,
			incentive.SupplierID,
			incentive.Year,
			incentive.Month,
			incentive.IncentivePercentage,
			nullableDecimal(incentive.ActualIncentivePaid),
			incentive.Notes,
			now,
			now,
		).
		Suffix("RETURNING " + joinColumns(incentiveColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	created, err := scanIncentive(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, fmt.Errorf("erro ao criar incentivo: %w", err)
	}

	return created, nil
}

func (r *incentiveRepository) Update(ctx context.Context, supplierID string, year, month int, patch *domain.IncentivePatch) (*domain.SupplierIncentive, error) {
	query, args, err := squirrel.
		Update(incentivesTable).
		Set("incentive_percentage", patch.IncentivePercentage).
		Set("actual_incentive_paid", nullableDecimal(patch.ActualIncentivePaid)).
		Set("notes", patch.Notes).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"supplier_id": supplierID, "year": year, "month": month}).
		Suffix("RETURNING " + joinColumns(incentiveColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	updated, err := scanIncentive(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err)
	}

	return updated, nil
}

func (r *incentiveRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, incentivesTable, id)
}

func (r *incentiveRepository) GetByID(ctx context.Context, id string) (*domain.SupplierIncentive, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByKey retorna nil, nil quando não há incentivo para o período
func (r *incentiveRepository) GetByKey(ctx context.Context, supplierID string, year, month int) (*domain.SupplierIncentive, error) {
	return r.getOne(ctx, squirrel.Eq{"supplier_id": supplierID, "year": year, "month": month})
}

func (r *incentiveRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.SupplierIncentive, error) {
	query, args, err := squirrel.
		Select(incentiveColumns...).
		From(incentivesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	incentive, err := scanIncentive(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar incentivo: %w", err)
	}

	return incentive, nil
}

func (r *incentiveRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierIncentive, error) {
	return r.List(ctx, domain.IncentiveFilters{SupplierID: &supplierID})
}

func (r *incentiveRepository) List(ctx context.Context, filters domain.IncentiveFilters) ([]*domain.SupplierIncentive, error) {
	builder := squirrel.
		Select(incentiveColumns...).
		From(incentivesTable).
		OrderBy("year DESC", "month DESC", "supplier_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyPeriodFilters(builder, filters.SupplierID, filters.Year, filters.Month)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar incentivos: %w", err)
	}
	defer rows.Close()

	incentives := make([]*domain.SupplierIncentive, 0)
	for rows.Next() {
		incentive, err := scanIncentive(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar incentivo: %w", err)
		}
		incentives = append(incentives, incentive)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return incentives, nil
}

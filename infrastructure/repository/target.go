package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/supplier-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
)

//go:generate mockgen -source=target.go -destination=mocks/target.go -package=mocks

const targetsTable = "supplier_targets"

var targetColumns = []string{
	"id",
	"supplier_id",
	"year",
	"month",
	"total_packs_target",
	"weekly_targets",
	"category_targets",
	"notes",
	"created_at",
	"updated_at",
}

type TargetRepository interface {
	Create(ctx context.Context, target *domain.SupplierTarget) (*domain.SupplierTarget, error)
	Update(ctx context.Context, supplierID string, year, month int, patch *domain.TargetPatch) (*domain.SupplierTarget, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.SupplierTarget, error)
	GetByKey(ctx context.Context, supplierID string, year, month int) (*domain.SupplierTarget, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierTarget, error)
	List(ctx context.Context, filters domain.TargetFilters) ([]*domain.SupplierTarget, error)
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

// encodeTargetMaps serializa as sub-metas para as colunas JSONB; sem categorias a coluna fica NULL
func encodeTargetMaps(weekly []int, category map[domain.Category]int) (string, *string, error) {
	weeklyJSON, err := json.MarshalToString(weekly)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar metas semanais: %w", err)
	}

	if len(category) == 0 {
		return weeklyJSON, nil, nil
	}

	categoryJSON, err := json.MarshalToString(category)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar metas por categoria: %w", err)
	}

	return weeklyJSON, &categoryJSON, nil
}

func scanTarget(row scanner) (*domain.SupplierTarget, error) {
	var target domain.SupplierTarget
	var weeklyJSON, categoryJSON []byte

	if err := row.Scan(
		&target.ID,
		&target.SupplierID,
		&target.Year,
		&target.Month,
		&target.TotalPacksTarget,
		&weeklyJSON,
		&categoryJSON,
		&target.Notes,
		&target.CreatedAt,
		&target.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(weeklyJSON, &target.WeeklyTargets); err != nil {
		return nil, fmt.Errorf("erro ao deserializar metas semanais: %w", err)
	}

	if len(categoryJSON) > 0 {
		if err := json.Unmarshal(categoryJSON, &target.CategoryTargets); err != nil {
			return nil, fmt.Errorf("erro ao deserializar metas por categoria: %w", err)
		}
	}

	return &target, nil
}

func (r *targetRepository) Create(ctx context.Context, target *domain.SupplierTarget) (*domain.SupplierTarget, error) {
	weeklyJSON, categoryJSON, err := encodeTargetMaps(target.WeeklyTargets, target.CategoryTargets)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query, args, err := squirrel.
		Insert(targetsTable).
		Columns(targetColumns...).
		Values(
			target.ID,
			target.SupplierID,
			target.Year,
			target.Month,
			target.TotalPacksTarget,
			weeklyJSON,
			categoryJSON,
			target.Notes,
			now,
			now,
		).
		Suffix("RETURNING " + joinColumns(targetColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	created, err := scanTarget(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, fmt.Errorf("erro ao criar meta: %w", err)
	}

	return created, nil
}

// Update substitui os campos mutáveis; a chave fornecedor/ano/mês nunca é alterada
func (r *targetRepository) Update(ctx context.Context, supplierID string, year, month int, patch *domain.TargetPatch) (*domain.SupplierTarget, error) {
	weeklyJSON, categoryJSON, err := encodeTargetMaps(patch.WeeklyTargets, patch.CategoryTargets)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Update(targetsTable).
		Set("total_packs_target", patch.TotalPacksTarget).
		Set("weekly_targets", weeklyJSON).
		Set("category_targets", categoryJSON).
		Set("notes", patch.Notes).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"supplier_id": supplierID, "year": year, "month": month}).
		Suffix("RETURNING " + joinColumns(targetColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	updated, err := scanTarget(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err)
	}

	return updated, nil
}

func (r *targetRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, targetsTable, id)
}

func (r *targetRepository) GetByID(ctx context.Context, id string) (*domain.SupplierTarget, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByKey retorna nil, nil quando não há meta para o período
func (r *targetRepository) GetByKey(ctx context.Context, supplierID string, year, month int) (*domain.SupplierTarget, error) {
	return r.getOne(ctx, squirrel.Eq{"supplier_id": supplierID, "year": year, "month": month})
}

func (r *targetRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.SupplierTarget, error) {
	query, args, err := squirrel.
		Select(targetColumns...).
		From(targetsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	target, err := scanTarget(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar meta: %w", err)
	}

	return target, nil
}

func (r *targetRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierTarget, error) {
	return r.List(ctx, domain.TargetFilters{SupplierID: &supplierID})
}

func (r *targetRepository) List(ctx context.Context, filters domain.TargetFilters) ([]*domain.SupplierTarget, error) {
	builder := squirrel.
		Select(targetColumns...).
		From(targetsTable).
		OrderBy("year DESC", "month DESC", "supplier_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyPeriodFilters(builder, filters.SupplierID, filters.Year, filters.Month)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar metas: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.SupplierTarget, 0)
	for rows.Next() {
		target, err := scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar meta: %w", err)
		}
		targets = append(targets, target)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return targets, nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/supplier-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
)

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

func applyPeriodFilters(builder squirrel.SelectBuilder, supplierID *string, year, month *int) squirrel.SelectBuilder {
	if supplierID != nil {
		builder = builder.Where(squirrel.Eq{"supplier_id": *supplierID})
	}
	if year != nil {
		builder = builder.Where(squirrel.Eq{"year": *year})
	}
	if month != nil {
		builder = builder.Where(squirrel.Eq{"month": *month})
	}
	return builder
}

func deleteByID(ctx context.Context, conn postgres.Queryer, table, id string) error {
	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover registro de %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar remoção em %s: %w", table, err)
	}

	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

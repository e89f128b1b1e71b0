package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/supplier-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
)

//go:generate mockgen -source=supplier.go -destination=mocks/supplier.go -package=mocks

const suppliersTable = "suppliers"

type SupplierRepository interface {
	GetByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Supplier, error)
}

type supplierRepository struct {
	conn *postgres.Connection
}

func NewSupplierRepository(conn *postgres.Connection) SupplierRepository {
	return &supplierRepository{
		conn: conn,
	}
}

func supplierSelect() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "name", "code", "categories", "active", "created_at").
		From(suppliersTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanSupplier(row scanner) (*domain.Supplier, error) {
	var supplier domain.Supplier
	var categories pq.StringArray

	if err := row.Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.Code,
		&categories,
		&supplier.Active,
		&supplier.CreatedAt,
	); err != nil {
		return nil, err
	}

	supplier.Categories = make([]domain.Category, 0, len(categories))
	for _, code := range categories {
		supplier.Categories = append(supplier.Categories, domain.Category(code))
	}

	return &supplier, nil
}

// GetByID retorna nil, nil quando o fornecedor não existe
func (r *supplierRepository) GetByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query, args, err := supplierSelect().Where(squirrel.Eq{"id": supplierID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	supplier, err := scanSupplier(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fornecedor %s: %w", supplierID, err)
	}

	return supplier, nil
}

func (r *supplierRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Supplier, error) {
	builder := supplierSelect().OrderBy("name ASC")
	if onlyActive {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	suppliers := make([]*domain.Supplier, 0)
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar fornecedor: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return suppliers, nil
}

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

//go:generate mockgen -source=supplier_order.go -destination=mocks/supplier_order.go -package=mocks

const supplierOrdersTable = "supplier_orders"

// supplierOrderInsertBatch mantém cada INSERT abaixo do limite de 65535 parâmetros do Postgres
const supplierOrderInsertBatch = 5000

var supplierOrderColumns = []string{
	"id",
	"external_id",
	"supplier_id",
	"final_amount",
	"status",
	"created_at",
	"synced_at",
}

// SupplierOrderRepository é o cache local dos pedidos confirmados e liquidados
type SupplierOrderRepository interface {
	OrdersForSupplier(ctx context.Context, supplierID string, filter domain.PeriodFilter) ([]*domain.SupplierOrder, error)
	OrdersForSuppliers(ctx context.Context, supplierIDs []string, filter domain.PeriodFilter) ([]*domain.SupplierOrder, error)
	ReplaceWindow(ctx context.Context, from, to time.Time, orders []*domain.SupplierOrder) (int, error)
	LastSyncedAt(ctx context.Context) (*time.Time, error)
}

type supplierOrderRepository struct {
	conn *postgres.Connection
}

func NewSupplierOrderRepository(conn *postgres.Connection) SupplierOrderRepository {
	return &supplierOrderRepository{
		conn: conn,
	}
}

func (r *supplierOrderRepository) OrdersForSupplier(ctx context.Context, supplierID string, filter domain.PeriodFilter) ([]*domain.SupplierOrder, error) {
	orders, err := r.listOrders(ctx, supplierID, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos do fornecedor %s: %w", supplierID, err)
	}
	return orders, nil
}

// OrdersForSuppliers busca numa única consulta os pedidos de vários fornecedores no período
func (r *supplierOrderRepository) OrdersForSuppliers(ctx context.Context, supplierIDs []string, filter domain.PeriodFilter) ([]*domain.SupplierOrder, error) {
	if len(supplierIDs) == 0 {
		return []*domain.SupplierOrder{}, nil
	}

	orders, err := r.listOrders(ctx, supplierIDs, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos de %d fornecedores: %w", len(supplierIDs), err)
	}
	return orders, nil
}

// listOrders aceita um id ou uma lista de ids em supplierIDs
func (r *supplierOrderRepository) listOrders(ctx context.Context, supplierIDs any, filter domain.PeriodFilter) ([]*domain.SupplierOrder, error) {
	statuses := make([]string, 0, len(domain.RevenueStatuses))
	for _, status := range domain.RevenueStatuses {
		statuses = append(statuses, string(status))
	}

	builder := squirrel.
		Select(supplierOrderColumns...).
		From(supplierOrdersTable).
		Where(squirrel.Eq{"supplier_id": supplierIDs, "status": statuses}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	from, to := filter.Bounds()
	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"created_at": *from})
	}
	if to != nil {
		builder = builder.Where(squirrel.Lt{"created_at": *to})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.SupplierOrder, 0)
	for rows.Next() {
		var order domain.SupplierOrder
		if err := rows.Scan(
			&order.ID,
			&order.ExternalID,
			&order.SupplierID,
			&order.FinalAmount,
			&order.Status,
			&order.CreatedAt,
			&order.SyncedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar pedido: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return orders, nil
}

// ReplaceWindow troca numa única transação os pedidos criados em [from, to) pelos informados
func (r *supplierOrderRepository) ReplaceWindow(ctx context.Context, from, to time.Time, orders []*domain.SupplierOrder) (int, error) {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(supplierOrdersTable).
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	saved := 0
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao limpar janela de pedidos: %w", err)
		}

		if len(orders) == 0 {
			return nil
		}

		now := time.Now().UTC()
		for start := 0; start < len(orders); start += supplierOrderInsertBatch {
			end := min(start+supplierOrderInsertBatch, len(orders))

			affected, err := insertOrders(ctx, tx, orders[start:end], now)
			if err != nil {
				return err
			}
			saved += affected
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return saved, nil
}

func insertOrders(ctx context.Context, tx *sql.Tx, orders []*domain.SupplierOrder, syncedAt time.Time) (int, error) {
	insert := squirrel.
		Insert(supplierOrdersTable).
		Columns(supplierOrderColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, order := range orders {
		insert = insert.Values(
			order.ID,
			order.ExternalID,
			order.SupplierID,
			order.FinalAmount,
			string(order.Status),
			order.CreatedAt,
			syncedAt,
		)
	}

	insert = insert.Suffix(`
		ON CONFLICT (external_id) DO UPDATE SET
			supplier_id = EXCLUDED.supplier_id,
			final_amount = EXCLUDED.final_amount,
			status = EXCLUDED.status,
			created_at = EXCLUDED.created_at,
			synced_at = EXCLUDED.synced_at
	`)

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao gravar pedidos: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}

func (r *supplierOrderRepository) LastSyncedAt(ctx context.Context) (*time.Time, error) {
	var lastSynced sql.NullTime
	err := r.conn.QueryRowContext(ctx, "SELECT MAX(synced_at) FROM "+supplierOrdersTable).Scan(&lastSynced)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar última sincronização: %w", err)
	}

	if !lastSynced.Valid {
		return nil, nil
	}

	return &lastSynced.Time, nil
}

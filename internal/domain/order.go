package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusSettled   OrderStatus = "settled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// RevenueStatuses são os status cujo valor final conta como receita
var RevenueStatuses = []OrderStatus{OrderStatusConfirmed, OrderStatusSettled}

func (s OrderStatus) CountsAsRevenue() bool {
	for _, status := range RevenueStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SupplierOrder é a cópia local de um pedido do sistema de pedidos atribuído a um fornecedor
type SupplierOrder struct {
	ID          string          `json:"id"`
	ExternalID  string          `json:"external_id"`
	SupplierID  string          `json:"supplier_id"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	SyncedAt    time.Time       `json:"synced_at"`
}

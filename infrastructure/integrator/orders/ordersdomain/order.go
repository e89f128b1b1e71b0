package ordersdomain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order é o pedido como devolvido pelo backend de pedidos da distribuidora
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"orderNumber,omitempty"`
	SupplierCompanyID string          `json:"supplierCompanyId"`
	FinalAmount       decimal.Decimal `json:"finalAmount"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// OrdersPage é uma página da listagem de pedidos
type OrdersPage struct {
	Data       []Order `json:"data"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
}

package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

type MonthlyRevenue struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"order_count"`
}

type RevenueSummary struct {
	SupplierID   string           `json:"supplier_id"`
	Period       PeriodKind       `json:"period"`
	TotalRevenue decimal.Decimal  `json:"total_revenue"`
	TotalOrders  int              `json:"total_orders"`
	Breakdown    []MonthlyRevenue `json:"breakdown,omitempty"`
}

// AggregateOrders soma os pedidos que contam como receita dentro do período.
// Para AllTime o detalhamento mensal vem em ordem crescente; para um mês vem uma única entrada.
func AggregateOrders(supplierID string, filter PeriodFilter, orders []*SupplierOrder) *RevenueSummary {
	summary := &RevenueSummary{
		SupplierID:   supplierID,
		Period:       filter.Kind,
		TotalRevenue: decimal.Zero,
	}

	type monthKey struct{ year, month int }
	byMonth := make(map[monthKey]*MonthlyRevenue)

	for _, order := range orders {
		if order == nil || order.SupplierID != supplierID || !order.Status.CountsAsRevenue() {
			continue
		}
		if !filter.Contains(order.CreatedAt) {
			continue
		}

		summary.TotalRevenue = summary.TotalRevenue.Add(order.FinalAmount)
		summary.TotalOrders++

		if filter.Kind != PeriodAllTime {
			continue
		}

		created := order.CreatedAt.UTC()
		key := monthKey{created.Year(), int(created.Month())}
		entry, ok := byMonth[key]
		if !ok {
			entry = &MonthlyRevenue{Year: key.year, Month: key.month, Revenue: decimal.Zero}
			byMonth[key] = entry
		}
		entry.Revenue = entry.Revenue.Add(order.FinalAmount)
		entry.OrderCount++
	}

	switch filter.Kind {
	case PeriodAllTime:
		summary.Breakdown = make([]MonthlyRevenue, 0, len(byMonth))
		for _, entry := range byMonth {
			summary.Breakdown = append(summary.Breakdown, *entry)
		}
		sort.Slice(summary.Breakdown, func(i, j int) bool {
			a, b := summary.Breakdown[i], summary.Breakdown[j]
			if a.Year != b.Year {
				return a.Year < b.Year
			}
			return a.Month < b.Month
		})
	case PeriodMonth:
		summary.Breakdown = []MonthlyRevenue{{
			Year:       filter.Year,
			Month:      filter.Month,
			Revenue:    summary.TotalRevenue,
			OrderCount: summary.TotalOrders,
		}}
	}

	return summary
}

package incentivizing

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Incentivos"

var reportHeaders = []string{
	"Fornecedor",
	"Código",
	"Pedidos",
	"Receita",
	"% Incentivo",
	"Incentivo calculado",
	"Incentivo pago",
	"Variância",
	"% Variância",
	"Situação",
}

var reportStatusLabels = map[domain.ReconciliationStatus]string{
	domain.ReconciliationNotApplicable:     "Pagamento não informado",
	domain.ReconciliationDivisionUndefined: "Incentivo calculado zero",
	domain.ReconciliationOverpaid:          "Pago acima",
	domain.ReconciliationUnderpaid:         "Pago abaixo",
	domain.ReconciliationBalanced:          "Conciliado",
}

// ReportTotals soma as colunas monetárias do relatório
func ReportTotals(summaries []*domain.IncentiveSummary) (revenueTotal, calculatedTotal, paidTotal decimal.Decimal) {
	for _, summary := range summaries {
		revenueTotal = revenueTotal.Add(summary.TotalRevenue)
		calculatedTotal = calculatedTotal.Add(summary.CalculatedIncentive)
		if summary.ActualIncentivePaid != nil {
			paidTotal = paidTotal.Add(*summary.ActualIncentivePaid)
		}
	}
	return revenueTotal, calculatedTotal, paidTotal
}

// ReportFilename é o nome do arquivo de exportação do mês
func ReportFilename(year, month int) string {
	return fmt.Sprintf("incentivos_%d_%02d.xlsx", year, month)
}

// WriteMonthlyReport grava a conciliação do mês em uma planilha XLSX
func WriteMonthlyReport(w io.Writer, year, month int, summaries []*domain.IncentiveSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("%w: %v", ErrBuildReport, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildReport, err)
	}

	moneyFormat := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildReport, err)
	}

	f.SetCellValue(reportSheet, "A1", fmt.Sprintf("Conciliação de incentivos %02d/%d", month, year))

	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(reportSheet, cell, header)
	}
	f.SetCellStyle(reportSheet, "A3", "J3", headerStyle)
	f.SetColWidth(reportSheet, "A", "A", 30)
	f.SetColWidth(reportSheet, "B", "J", 18)

	for i, summary := range summaries {
		row := i + 4
		values := []any{
			summary.SupplierName,
			summary.SupplierCode,
			summary.TotalOrders,
			summary.TotalRevenue.InexactFloat64(),
			summary.IncentivePercentage.InexactFloat64(),
			summary.CalculatedIncentive.InexactFloat64(),
			optionalFloat(summary.ActualIncentivePaid),
			optionalFloat(summary.Variance),
			optionalFloat(summary.VariancePercentage),
			reportStatusLabels[summary.Status],
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(reportSheet, cell, value)
		}
		f.SetCellStyle(reportSheet, fmt.Sprintf("D%d", row), fmt.Sprintf("H%d", row), moneyStyle)
	}

	totalRow := len(summaries) + 4
	revenueTotal, calculatedTotal, paidTotal := ReportTotals(summaries)
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(reportSheet, fmt.Sprintf("D%d", totalRow), revenueTotal.InexactFloat64())
	f.SetCellValue(reportSheet, fmt.Sprintf("F%d", totalRow), calculatedTotal.InexactFloat64())
	f.SetCellValue(reportSheet, fmt.Sprintf("G%d", totalRow), paidTotal.InexactFloat64())
	f.SetCellStyle(reportSheet, fmt.Sprintf("D%d", totalRow), fmt.Sprintf("H%d", totalRow), moneyStyle)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: %v", ErrBuildReport, err)
	}

	return nil
}

// optionalFloat deixa a célula vazia quando o valor não se aplica
func optionalFloat(value *decimal.Decimal) any {
	if value == nil {
		return ""
	}
	return value.InexactFloat64()
}

package adapters

import (
	"slices"

	"github.com/de-tools/billsplit/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const ReportTitle = "Bill Split Summary"

func FormatMoney(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(2)
}

// FormatAdjustment renders an adjustment the way it was entered.
func FormatAdjustment(currency string, adj *domain.Adjustment) string {
	if adj.IsZero() {
		return ""
	}
	if adj.Percentage {
		return adj.Value.String() + "%"
	}
	return FormatMoney(currency, adj.Value)
}

func MapAllocationToReport(bill domain.Bill, result *domain.AllocationResult, currency string) *domain.Report {
	report := &domain.Report{
		Title:    ReportTitle,
		Subtotal: FormatMoney(currency, result.Subtotal),
		Charge:   FormatAdjustment(currency, bill.Charge),
		Discount: FormatAdjustment(currency, bill.Discount),
	}

	for _, item := range bill.Items {
		report.Items = append(report.Items, domain.ReportItem{
			Name:         item.Name,
			Price:        FormatMoney(currency, item.Price),
			Participants: slices.Clone(item.Participants),
			PerPerson:    FormatMoney(currency, item.PerPerson()),
		})
	}

	for _, share := range result.Shares {
		report.Owed = append(report.Owed, domain.ReportDetail{
			Name:  share.Participant,
			Value: FormatMoney(currency, share.Total),
			Raw:   FormatMoney(currency, share.Raw),
		})
	}
	return report
}

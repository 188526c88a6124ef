package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/girnar-group/staffops-backend-go/internal/domain/report"
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
)

// Share text is a monospace-friendly block meant to be pasted into a
// messaging app as-is.

func (s *ReportServiceImpl) SalaryShareText(ctx context.Context, month, year int, category *staff.Category) (report.ShareResult, error) {
	summary, err := s.salaryService.Summary(ctx, month, year, category)
	if err != nil {
		return report.ShareResult{}, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Salary Sheet - %s*\n", periodLabel(month, year))
	if summary.Category != nil {
		fmt.Fprintf(&b, "Category: %s\n", *summary.Category)
	}
	b.WriteString("\n")

	for _, row := range summary.Staff {
		status := "DUE"
		if row.IsPaid {
			status = "PAID"
		}
		fmt.Fprintf(&b, "%s: %d shifts x %s = %s, adv %s, c/f %s => *%s* [%s]\n",
			row.StaffName, row.TotalShifts, row.ShiftRate.StringFixed(0),
			row.ShiftAmount.StringFixed(0), row.TotalAdvance.StringFixed(0),
			row.CarryForward.StringFixed(0), row.Payable.StringFixed(0), status)
	}

	fmt.Fprintf(&b, "\n*Total Payable: %s*\n", summary.TotalPayable.StringFixed(0))
	fmt.Fprintf(&b, "\n%s\n%s\n", footerNoteEN, footerNoteHI)

	return report.ShareResult{Text: b.String()}, nil
}

func (s *ReportServiceImpl) CreditShareText(ctx context.Context, partyID string, month, year int) (report.ShareResult, error) {
	statement, err := s.creditService.Statement(ctx, partyID, month, year)
	if err != nil {
		return report.ShareResult{}, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Credit Statement - %s*\n", statement.Party.Name)
	fmt.Fprintf(&b, "%s to %s\n\n", statement.From, statement.To)

	for _, txn := range statement.Transactions {
		sign := "+"
		if txn.Kind == "payment" {
			sign = "-"
		}
		line := fmt.Sprintf("%s  %s%s", txn.Date, sign, txn.Amount.StringFixed(0))
		if txn.Note != nil {
			line += "  (" + *txn.Note + ")"
		}
		b.WriteString(line + "\n")
	}

	fmt.Fprintf(&b, "\nCredit %s | Payment %s\n", statement.TotalCredit.StringFixed(0), statement.TotalPayment.StringFixed(0))
	fmt.Fprintf(&b, "*Outstanding: %s*\n", statement.Party.Balance.StringFixed(0))
	fmt.Fprintf(&b, "\n%s\n%s\n", footerNoteEN, footerNoteHI)

	return report.ShareResult{Text: b.String()}, nil
}

func (s *ReportServiceImpl) SalesShareText(ctx context.Context, month, year int) (report.ShareResult, error) {
	summary, err := s.salesService.MonthlySummary(ctx, month, year)
	if err != nil {
		return report.ShareResult{}, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Petroleum Sales - %s*\n\n", periodLabel(month, year))
	fmt.Fprintf(&b, "Total: %s\n", summary.TotalAmount.StringFixed(0))
	fmt.Fprintf(&b, "Petrol: %s | Diesel: %s\n", summary.PetrolAmount.StringFixed(0), summary.DieselAmount.StringFixed(0))
	fmt.Fprintf(&b, "Cash: %s | Credit: %s\n", summary.CashAmount.StringFixed(0), summary.CreditAmount.StringFixed(0))
	fmt.Fprintf(&b, "Entries: %d\n", len(summary.Sales))
	fmt.Fprintf(&b, "\n%s\n%s\n", footerNoteEN, footerNoteHI)

	return report.ShareResult{Text: b.String()}, nil
}

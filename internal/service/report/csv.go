package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/girnar-group/staffops-backend-go/internal/domain/report"
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
)

// writeCSV writes rows plus the bilingual footer note. The Devanagari line is
// plain UTF-8; spreadsheet apps handle it without a BOM in practice.
func (s *ReportServiceImpl) writeCSV(prefix string, rows [][]string) (string, error) {
	path, err := s.exportPath(prefix, "csv")
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write csv rows: %w", err)
	}
	if err := w.Write([]string{}); err != nil {
		return "", err
	}
	if err := w.Write([]string{footerNoteEN}); err != nil {
		return "", err
	}
	if err := w.Write([]string{footerNoteHI}); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return path, nil
}

func (s *ReportServiceImpl) SalarySheetCSV(ctx context.Context, month, year int, category *staff.Category) (report.ExportResult, error) {
	summary, err := s.salaryService.Summary(ctx, month, year, category)
	if err != nil {
		return report.ExportResult{}, err
	}

	rows := [][]string{
		{"Name", "Category", "Shifts", "Absent", "Rate", "Shift Amount", "Advance", "Carry Forward", "Payable", "Status"},
	}
	for _, row := range summary.Staff {
		status := "unpaid"
		if row.IsPaid {
			status = "paid"
		}
		rows = append(rows, []string{
			row.StaffName,
			row.Category,
			fmt.Sprintf("%d", row.TotalShifts),
			fmt.Sprintf("%d", row.AbsentDays),
			row.ShiftRate.StringFixed(2),
			row.ShiftAmount.StringFixed(2),
			row.TotalAdvance.StringFixed(2),
			row.CarryForward.StringFixed(2),
			row.Payable.StringFixed(2),
			status,
		})
	}
	rows = append(rows, []string{"", "", "", "", "", "", "", "Total", summary.TotalPayable.StringFixed(2), ""})

	path, err := s.writeCSV("salary-sheet", rows)
	if err != nil {
		return report.ExportResult{}, err
	}
	return report.ExportResult{Path: path}, nil
}

func (s *ReportServiceImpl) CreditStatementCSV(ctx context.Context, partyID string, month, year int) (report.ExportResult, error) {
	statement, err := s.creditService.Statement(ctx, partyID, month, year)
	if err != nil {
		return report.ExportResult{}, err
	}

	rows := [][]string{
		{"Date", "Type", "Amount", "Note"},
	}
	for _, txn := range statement.Transactions {
		note := ""
		if txn.Note != nil {
			note = *txn.Note
		}
		rows = append(rows, []string{txn.Date, txn.Kind, txn.Amount.StringFixed(2), note})
	}
	rows = append(rows,
		[]string{"", "Total Credit", statement.TotalCredit.StringFixed(2), ""},
		[]string{"", "Total Payment", statement.TotalPayment.StringFixed(2), ""},
		[]string{"", "Outstanding", statement.Party.Balance.StringFixed(2), ""},
	)

	path, err := s.writeCSV("credit-statement", rows)
	if err != nil {
		return report.ExportResult{}, err
	}
	return report.ExportResult{Path: path}, nil
}

func (s *ReportServiceImpl) SalesSummaryCSV(ctx context.Context, month, year int) (report.ExportResult, error) {
	summary, err := s.salesService.MonthlySummary(ctx, month, year)
	if err != nil {
		return report.ExportResult{}, err
	}

	rows := [][]string{
		{"Date", "Fuel", "Quantity", "Rate", "Amount", "Mode", "Party"},
	}
	for _, row := range summary.Sales {
		party := ""
		if row.PartyName != nil {
			party = *row.PartyName
		}
		rows = append(rows, []string{
			row.Date, row.Fuel,
			row.Quantity.StringFixed(2), row.Rate.StringFixed(2), row.Amount.StringFixed(2),
			row.PaymentMode, party,
		})
	}
	rows = append(rows,
		[]string{"", "", "", "Total", summary.TotalAmount.StringFixed(2), "", ""},
		[]string{"", "", "", "Petrol", summary.PetrolAmount.StringFixed(2), "", ""},
		[]string{"", "", "", "Diesel", summary.DieselAmount.StringFixed(2), "", ""},
		[]string{"", "", "", "Cash", summary.CashAmount.StringFixed(2), "", ""},
		[]string{"", "", "", "Credit", summary.CreditAmount.StringFixed(2), "", ""},
	)

	path, err := s.writeCSV("sales-summary", rows)
	if err != nil {
		return report.ExportResult{}, err
	}
	return report.ExportResult{Path: path}, nil
}

package report

import (
	"context"
	"fmt"

	"github.com/girnar-group/staffops-backend-go/internal/domain/report"
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
	"github.com/jung-kurt/gofpdf"
)

// Column widths for the landscape salary sheet, in mm.
var salaryColumns = []struct {
	header string
	width  float64
}{
	{"Name", 50},
	{"Category", 28},
	{"Shifts", 18},
	{"Rate", 24},
	{"Shift Amt", 28},
	{"Advance", 28},
	{"Carry Fwd", 28},
	{"Payable", 28},
	{"Status", 20},
}

func (s *ReportServiceImpl) SalarySheetPDF(ctx context.Context, month, year int, category *staff.Category) (report.ExportResult, error) {
	summary, err := s.salaryService.Summary(ctx, month, year, category)
	if err != nil {
		return report.ExportResult{}, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	title := "Salary Sheet - " + periodLabel(month, year)
	if summary.Category != nil {
		title += " (" + *summary.Category + ")"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range salaryColumns {
		pdf.CellFormat(col.width, 8, col.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summary.Staff {
		status := "Unpaid"
		if row.IsPaid {
			status = "Paid"
		}
		cells := []string{
			row.StaffName,
			row.Category,
			fmt.Sprintf("%d", row.TotalShifts),
			row.ShiftRate.StringFixed(2),
			row.ShiftAmount.StringFixed(2),
			row.TotalAdvance.StringFixed(2),
			row.CarryForward.StringFixed(2),
			row.Payable.StringFixed(2),
			status,
		}
		for i, cell := range cells {
			align := "R"
			if i < 2 || i == len(cells)-1 {
				align = "L"
			}
			pdf.CellFormat(salaryColumns[i].width, 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total Payable: "+summary.TotalPayable.StringFixed(2))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 6, footerNoteEN)

	path, err := s.exportPath("salary-sheet", "pdf")
	if err != nil {
		return report.ExportResult{}, err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return report.ExportResult{}, fmt.Errorf("failed to write salary sheet pdf: %w", err)
	}

	return report.ExportResult{Path: path}, nil
}

func (s *ReportServiceImpl) CreditStatementPDF(ctx context.Context, partyID string, month, year int) (report.ExportResult, error) {
	statement, err := s.creditService.Statement(ctx, partyID, month, year)
	if err != nil {
		return report.ExportResult{}, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Credit Statement - "+statement.Party.Name)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Period: "+statement.From+" to "+statement.To)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(35, 8, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(85, 8, "Note", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, txn := range statement.Transactions {
		note := ""
		if txn.Note != nil {
			note = *txn.Note
		}
		pdf.CellFormat(35, 7, txn.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, txn.Kind, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, txn.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(85, 7, note, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Credit: "+statement.TotalCredit.StringFixed(2)+"    Payment: "+statement.TotalPayment.StringFixed(2))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Outstanding Balance: "+statement.Party.Balance.StringFixed(2))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 6, footerNoteEN)

	path, err := s.exportPath("credit-statement", "pdf")
	if err != nil {
		return report.ExportResult{}, err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return report.ExportResult{}, fmt.Errorf("failed to write credit statement pdf: %w", err)
	}

	return report.ExportResult{Path: path}, nil
}

func (s *ReportServiceImpl) SalesSummaryPDF(ctx context.Context, month, year int) (report.ExportResult, error) {
	summary, err := s.salesService.MonthlySummary(ctx, month, year)
	if err != nil {
		return report.ExportResult{}, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Petroleum Sales - "+periodLabel(month, year))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(28, 8, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(24, 8, "Fuel", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 8, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(32, 8, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 8, "Mode", "1", 0, "C", true, 0, "")
	pdf.CellFormat(32, 8, "Party", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summary.Sales {
		party := ""
		if row.PartyName != nil {
			party = *row.PartyName
		}
		pdf.CellFormat(28, 7, row.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(24, 7, row.Fuel, "1", 0, "L", false, 0, "")
		pdf.CellFormat(26, 7, row.Quantity.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 7, row.Rate.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(32, 7, row.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(22, 7, row.PaymentMode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(32, 7, party, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Total: "+summary.TotalAmount.StringFixed(2))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Petrol: "+summary.PetrolAmount.StringFixed(2)+"    Diesel: "+summary.DieselAmount.StringFixed(2))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Cash: "+summary.CashAmount.StringFixed(2)+"    Credit: "+summary.CreditAmount.StringFixed(2))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 6, footerNoteEN)

	path, err := s.exportPath("sales-summary", "pdf")
	if err != nil {
		return report.ExportResult{}, err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return report.ExportResult{}, fmt.Errorf("failed to write sales summary pdf: %w", err)
	}

	return report.ExportResult{Path: path}, nil
}

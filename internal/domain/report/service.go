package report

import (
	"context"

	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
)

// ExportResult points at a file written under the export directory.
type ExportResult struct {
	Path string `json:"path"`
}

// ShareResult carries a ready-to-paste text block for messaging apps.
type ShareResult struct {
	Text string `json:"text"`
}

// ReportService renders the month's figures into files and share text. Every
// export re-reads live data through the underlying services, so a report is
// always as fresh as the screens.
type ReportService interface {
	SalarySheetPDF(ctx context.Context, month, year int, category *staff.Category) (ExportResult, error)
	SalarySheetCSV(ctx context.Context, month, year int, category *staff.Category) (ExportResult, error)
	SalaryShareText(ctx context.Context, month, year int, category *staff.Category) (ShareResult, error)

	CreditStatementPDF(ctx context.Context, partyID string, month, year int) (ExportResult, error)
	CreditStatementCSV(ctx context.Context, partyID string, month, year int) (ExportResult, error)
	CreditShareText(ctx context.Context, partyID string, month, year int) (ShareResult, error)

	SalesSummaryPDF(ctx context.Context, month, year int) (ExportResult, error)
	SalesSummaryCSV(ctx context.Context, month, year int) (ExportResult, error)
	SalesShareText(ctx context.Context, month, year int) (ShareResult, error)
}

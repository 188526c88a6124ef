package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/credit"
	"github.com/girnar-group/staffops-backend-go/internal/domain/report"
	"github.com/girnar-group/staffops-backend-go/internal/domain/sales"
	"github.com/girnar-group/staffops-backend-go/internal/domain/salary"
	"github.com/google/uuid"
)

// Bilingual footer stamped on CSV exports and share text.
const (
	footerNoteEN = "This is a computer generated report"
	footerNoteHI = "यह कंप्यूटर द्वारा तैयार रिपोर्ट है"
)

type ReportServiceImpl struct {
	salaryService salary.SalaryService
	creditService credit.CreditService
	salesService  sales.SalesService
	exportDir     string
}

func NewReportService(
	salaryService salary.SalaryService,
	creditService credit.CreditService,
	salesService sales.SalesService,
	exportDir string,
) report.ReportService {
	return &ReportServiceImpl{
		salaryService: salaryService,
		creditService: creditService,
		salesService:  salesService,
		exportDir:     exportDir,
	}
}

// exportPath builds a unique file path under the export directory, creating
// the directory on first use.
func (s *ReportServiceImpl) exportPath(prefix, ext string) (string, error) {
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	name := fmt.Sprintf("%s-%s-%s.%s", prefix, time.Now().Format("20060102"), uuid.NewString()[:8], ext)
	return filepath.Join(s.exportDir, name), nil
}

func periodLabel(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

package salary

import (
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"

	"context"
)

// SalaryService defines the salary computation core and its payment state
// transitions
type SalaryService interface {
	// Calculate recomputes the month from live rows. Read-only and
	// idempotent: calling it twice with no writes in between returns
	// identical values.
	Calculate(ctx context.Context, staffID string, month, year int) (CalculationResponse, error)
	// Summary runs Calculate for every staff member in the filter and sums
	// the payable column.
	Summary(ctx context.Context, month, year int, category *staff.Category) (SummaryResponse, error)
	// MarkPaid settles the month inside one transaction: recomputes the
	// calculation, flips every pending advance of the staff member to
	// deducted, and upserts the record with is_paid=true and the pay time.
	MarkPaid(ctx context.Context, req MarkPaidRequest) (RecordResponse, error)
	// MarkUnpaid reverses only the record's paid flag; advances flipped by
	// MarkPaid stay deducted (the advance admin override restores them).
	MarkUnpaid(ctx context.Context, req MarkPaidRequest) (RecordResponse, error)
	// History lists the persisted records of one staff member.
	History(ctx context.Context, staffID string) ([]RecordResponse, error)
}

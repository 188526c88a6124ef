package attendance

import "context"

// AttendanceService defines business logic for daily attendance marking
type AttendanceService interface {
	// Mark records or overwrites a day's status for a staff member.
	Mark(ctx context.Context, req MarkRequest) (RecordResponse, error)
	// Clear removes the row so the date reads as "not marked" again.
	Clear(ctx context.Context, req ClearRequest) error
	// ListForStaff returns the raw rows of a staff member's month view.
	ListForStaff(ctx context.Context, staffID string, month, year int) ([]RecordResponse, error)
	// ListForDate returns every staff member's mark on one date.
	ListForDate(ctx context.Context, date string) ([]RecordResponse, error)
	// MonthSummary reduces a staff member's month to shift/absence totals.
	MonthSummary(ctx context.Context, staffID string, month, year int) (MonthSummaryResponse, error)
}

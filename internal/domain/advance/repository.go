package advance

import (
	"context"
	"time"
)

type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]Advance, error)
	ListPendingByStaff(ctx context.Context, staffID string) ([]Advance, error)
	// MarkDeductedByStaff flips every pending advance of the staff member
	// to deducted, regardless of date. Returns the number of rows changed.
	MarkDeductedByStaff(ctx context.Context, staffID string) (int64, error)
	// SetDeducted is the administrative override for a single advance.
	SetDeducted(ctx context.Context, id string, deducted bool) error
	Delete(ctx context.Context, id string) error
	DeleteByStaff(ctx context.Context, staffID string) (int64, error)
}

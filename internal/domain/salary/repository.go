package salary

import (
	"context"
	"time"
)

type SalaryRepository interface {
	// GetByStaffPeriod returns the persisted record for (staff, month, year)
	// or ErrRecordNotFound when the month was never paid.
	GetByStaffPeriod(ctx context.Context, staffID string, month, year int) (Record, error)
	// Upsert writes the record, overwriting the computed fields when a row
	// for (staff_id, month, year) already exists. The natural unique key
	// guarantees a second pay action overwrites rather than duplicates.
	Upsert(ctx context.Context, rec Record) (Record, error)
	// SetPaidStatus flips only the payment flag and date; computed fields
	// stay frozen.
	SetPaidStatus(ctx context.Context, staffID string, month, year int, isPaid bool, paidDate *time.Time, paidBy *string) error
	ListByPeriod(ctx context.Context, month, year int) ([]Record, error)
	ListByStaff(ctx context.Context, staffID string) ([]Record, error)
}

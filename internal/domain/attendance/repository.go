package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts the record or, when a row already exists for
	// (staff_id, date), replaces its status and shift count.
	Upsert(ctx context.Context, rec Record) (Record, error)
	// Delete clears a marked date back to "not marked".
	Delete(ctx context.Context, staffID string, date time.Time) error
	ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]Record, error)
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
}

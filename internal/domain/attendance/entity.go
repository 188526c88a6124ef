package attendance

import "time"

// Status enum - a date with no stored row is "not marked", which is a
// distinct state from absent and is represented by record absence.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Record - at most one row per (staff, calendar date). ShiftCount is only
// meaningful when Status is present; a nil value counts as one shift.
type Record struct {
	ID         string
	StaffID    string
	Date       time.Time
	Status     Status
	ShiftCount *int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	StaffName *string
}

// MonthSummary is the reduction of a staff member's records over a period.
type MonthSummary struct {
	TotalShifts int
	AbsentDays  int
}

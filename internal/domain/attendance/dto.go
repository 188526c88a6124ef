package attendance

import (
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
)

type MarkRequest struct {
	StaffID    string `json:"staff_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     string `json:"status"`
	ShiftCount *int   `json:"shift_count,omitempty"`

	parsedDate time.Time
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	r.parsedDate = date
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present' or 'absent'"})
	}
	if r.ShiftCount != nil && (*r.ShiftCount < 1 || *r.ShiftCount > 2) {
		errs = append(errs, validator.ValidationError{Field: "shift_count", Message: "must be 1 or 2"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the date parsed during Validate.
func (r *MarkRequest) ParsedDate() time.Time {
	return r.parsedDate
}

type ClearRequest struct {
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
}

type RecordResponse struct {
	ID         string  `json:"id"`
	StaffID    string  `json:"staff_id"`
	StaffName  *string `json:"staff_name,omitempty"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	ShiftCount int     `json:"shift_count"`
}

type MonthSummaryResponse struct {
	StaffID     string `json:"staff_id"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	TotalShifts int    `json:"total_shifts"`
	AbsentDays  int    `json:"absent_days"`
}

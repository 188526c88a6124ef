package salary

import (
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Period carries the (month, year) pair every salary screen is scoped to.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (p Period) Validate() error {
	var errs validator.ValidationErrors

	if p.Month < 1 || p.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if p.Year < 2000 || p.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a four-digit year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	StaffID string `json:"staff_id"`
	Period
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if err := r.Period.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	StaffID         string          `json:"staff_id"`
	StaffName       string          `json:"staff_name"`
	Category        string          `json:"category"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	ShiftRate       decimal.Decimal `json:"shift_rate"`
	TotalShifts     int             `json:"total_shifts"`
	AbsentDays      int             `json:"absent_days"`
	ShiftAmount     decimal.Decimal `json:"shift_amount"`
	TotalAdvance    decimal.Decimal `json:"total_advance"`
	DeductedAdvance decimal.Decimal `json:"deducted_advance"`
	PendingAdvance  decimal.Decimal `json:"pending_advance"`
	CarryForward    decimal.Decimal `json:"carry_forward"`
	Payable         decimal.Decimal `json:"payable"`
	IsPaid          bool            `json:"is_paid"`
	PaidDate        *string         `json:"paid_date,omitempty"`
}

// RecordResponse mirrors the frozen row written by the pay action.
type RecordResponse struct {
	ID           string          `json:"id"`
	StaffID      string          `json:"staff_id"`
	StaffName    *string         `json:"staff_name,omitempty"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	ShiftRate    decimal.Decimal `json:"shift_rate"`
	TotalShifts  int             `json:"total_shifts"`
	ShiftAmount  decimal.Decimal `json:"shift_amount"`
	TotalAdvance decimal.Decimal `json:"total_advance"`
	CarryForward decimal.Decimal `json:"carry_forward"`
	Payable      decimal.Decimal `json:"payable"`
	IsPaid       bool            `json:"is_paid"`
	PaidDate     *string         `json:"paid_date,omitempty"`
}

// SummaryResponse is a department view: one calculation per staff member in
// the category filter plus the summed payable.
type SummaryResponse struct {
	Month        int                   `json:"month"`
	Year         int                   `json:"year"`
	Category     *string               `json:"category,omitempty"`
	Staff        []CalculationResponse `json:"staff"`
	TotalPayable decimal.Decimal       `json:"total_payable"`
}

// FormatPaidDate renders a *time.Time for API responses.
func FormatPaidDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format(time.RFC3339)
	return &str
}

package advance

import (
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdvanceRequest struct {
	StaffID string          `json:"staff_id"`
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date"` // YYYY-MM-DD
	Note    *string         `json:"note,omitempty"`

	parsedDate time.Time
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	r.parsedDate = date

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateAdvanceRequest) ParsedDate() time.Time {
	return r.parsedDate
}

type AdvanceResponse struct {
	ID         string          `json:"id"`
	StaffID    string          `json:"staff_id"`
	StaffName  *string         `json:"staff_name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Note       *string         `json:"note,omitempty"`
	IsDeducted bool            `json:"is_deducted"`
}

type LedgerResponse struct {
	StaffID         string            `json:"staff_id"`
	TotalAdvance    decimal.Decimal   `json:"total_advance"`
	DeductedAdvance decimal.Decimal   `json:"deducted_advance"`
	PendingAdvance  decimal.Decimal   `json:"pending_advance"`
	Advances        []AdvanceResponse `json:"advances"`
}

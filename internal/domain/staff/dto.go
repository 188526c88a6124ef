package staff

import (
	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateStaffRequest struct {
	Name       string           `json:"name"`
	Roster     string           `json:"roster"`
	Category   string           `json:"category"`
	ShiftRate  decimal.Decimal  `json:"shift_rate"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	roster := Roster(r.Roster)
	if !roster.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "roster", Message: "must be 'general' or 'transport'"})
	} else if !Category(r.Category).BelongsTo(roster) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "does not belong to roster"})
	}
	if r.ShiftRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "shift_rate", Message: "must be non-negative"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID         string
	Name       *string          `json:"name,omitempty"`
	Category   *string          `json:"category,omitempty"`
	ShiftRate  *decimal.Decimal `json:"shift_rate,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	IsActive   *bool            `json:"is_active,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.ShiftRate != nil && r.ShiftRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "shift_rate", Message: "must be non-negative"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Roster     string           `json:"roster"`
	Category   string           `json:"category"`
	ShiftRate  decimal.Decimal  `json:"shift_rate"`
	BaseSalary decimal.Decimal  `json:"base_salary"`
	Phone      *string          `json:"phone,omitempty"`
	IsActive   bool             `json:"is_active"`
}

type StaffFilter struct {
	Roster     *Roster
	Category   *Category
	ActiveOnly bool
}

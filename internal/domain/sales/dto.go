package sales

import (
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	Date        string          `json:"date"`
	Fuel        string          `json:"fuel"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	PaymentMode string          `json:"payment_mode"`
	PartyID     *string         `json:"party_id,omitempty"`
	Note        *string         `json:"note,omitempty"`

	parsedDate time.Time
}

func (r *CreateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	r.parsedDate = date
	if !Fuel(r.Fuel).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "fuel", Message: "must be 'petrol' or 'diesel'"})
	}
	if !r.Quantity.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be positive"})
	}
	if !r.Rate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be positive"})
	}
	if !PaymentMode(r.PaymentMode).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "payment_mode", Message: "must be 'cash' or 'credit'"})
	}
	if PaymentMode(r.PaymentMode) == ModeCredit && (r.PartyID == nil || validator.IsEmpty(*r.PartyID)) {
		errs = append(errs, validator.ValidationError{Field: "party_id", Message: "is required for credit sales"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateSaleRequest) ParsedDate() time.Time {
	return r.parsedDate
}

type SaleResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Fuel        string          `json:"fuel"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"payment_mode"`
	PartyID     *string         `json:"party_id,omitempty"`
	PartyName   *string         `json:"party_name,omitempty"`
	Note        *string         `json:"note,omitempty"`
}

type SummaryResponse struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	Sales        []SaleResponse  `json:"sales"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PetrolAmount decimal.Decimal `json:"petrol_amount"`
	DieselAmount decimal.Decimal `json:"diesel_amount"`
	CashAmount   decimal.Decimal `json:"cash_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
}

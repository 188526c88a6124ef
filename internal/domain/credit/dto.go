package credit

import (
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePartyRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Note  *string `json:"note,omitempty"`
}

func (r *CreatePartyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTransactionRequest struct {
	PartyID string          `json:"party_id"`
	Date    string          `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Kind    string          `json:"kind"`
	Note    *string         `json:"note,omitempty"`

	parsedDate time.Time
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PartyID) {
		errs = append(errs, validator.ValidationError{Field: "party_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !Kind(r.Kind).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'credit' or 'payment'"})
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

func (r *CreateTransactionRequest) ParsedDate() time.Time {
	return r.parsedDate
}

type PartyResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Phone   *string         `json:"phone,omitempty"`
	Note    *string         `json:"note,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

type TransactionResponse struct {
	ID        string          `json:"id"`
	PartyID   string          `json:"party_id"`
	PartyName *string         `json:"party_name,omitempty"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      string          `json:"kind"`
	Note      *string         `json:"note,omitempty"`
}

// StatementResponse is a party's ledger over a range plus the balance of
// exactly those rows.
type StatementResponse struct {
	Party        PartyResponse         `json:"party"`
	From         string                `json:"from"`
	To           string                `json:"to"`
	Transactions []TransactionResponse `json:"transactions"`
	TotalCredit  decimal.Decimal       `json:"total_credit"`
	TotalPayment decimal.Decimal       `json:"total_payment"`
	Balance      decimal.Decimal       `json:"balance"`
}

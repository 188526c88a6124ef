package credit

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind enum - a party either takes goods on credit or pays down the balance
type Kind string

const (
	KindCredit  Kind = "credit"
	KindPayment Kind = "payment"
)

func (k Kind) IsValid() bool {
	return k == KindCredit || k == KindPayment
}

// Party - an account holder in the credit ledger (a customer taking fuel or
// material on credit). Soft-deactivated like staff.
type Party struct {
	ID        string
	Name      string
	Phone     *string
	Note      *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Derived when listed with balances
	Balance decimal.Decimal
}

// Transaction - one dated ledger movement against a party.
type Transaction struct {
	ID        string
	PartyID   string
	Date      time.Time
	Amount    decimal.Decimal
	Kind      Kind
	Note      *string
	CreatedAt time.Time

	// Joined fields
	PartyName *string
}

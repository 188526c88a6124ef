package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fuel enum
type Fuel string

const (
	FuelPetrol Fuel = "petrol"
	FuelDiesel Fuel = "diesel"
)

func (f Fuel) IsValid() bool {
	return f == FuelPetrol || f == FuelDiesel
}

// PaymentMode enum
type PaymentMode string

const (
	ModeCash   PaymentMode = "cash"
	ModeCredit PaymentMode = "credit"
)

func (m PaymentMode) IsValid() bool {
	return m == ModeCash || m == ModeCredit
}

// Sale - one petroleum sale entry. Amount is stored (quantity × rate at entry
// time) so later rate edits never rewrite history.
type Sale struct {
	ID          string
	Date        time.Time
	Fuel        Fuel
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
	PaymentMode PaymentMode
	PartyID     *string
	Note        *string
	CreatedAt   time.Time

	// Joined fields
	PartyName *string
}

// Totals aggregates a set of sales by fuel and payment mode.
type Totals struct {
	TotalAmount  decimal.Decimal
	PetrolAmount decimal.Decimal
	DieselAmount decimal.Decimal
	CashAmount   decimal.Decimal
	CreditAmount decimal.Decimal
}

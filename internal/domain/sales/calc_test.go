package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	rows := []Sale{
		{Fuel: FuelPetrol, PaymentMode: ModeCash, Amount: decimal.NewFromInt(1000)},
		{Fuel: FuelDiesel, PaymentMode: ModeCredit, Amount: decimal.NewFromInt(2500)},
		{Fuel: FuelDiesel, PaymentMode: ModeCash, Amount: decimal.NewFromInt(500)},
	}

	totals := Sum(rows)

	assert.True(t, totals.TotalAmount.Equal(decimal.NewFromInt(4000)))
	assert.True(t, totals.PetrolAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.DieselAmount.Equal(decimal.NewFromInt(3000)))
	assert.True(t, totals.CashAmount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, totals.CreditAmount.Equal(decimal.NewFromInt(2500)))
}

func TestSumEmpty(t *testing.T) {
	totals := Sum(nil)

	assert.True(t, totals.TotalAmount.IsZero())
	assert.True(t, totals.CashAmount.IsZero())
	assert.True(t, totals.CreditAmount.IsZero())
}

package credit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBalance(t *testing.T) {
	txns := []Transaction{
		{Kind: KindCredit, Amount: decimal.NewFromInt(5000)},
		{Kind: KindPayment, Amount: decimal.NewFromInt(2000)},
		{Kind: KindCredit, Amount: decimal.NewFromInt(1500)},
	}

	assert.True(t, Balance(txns).Equal(decimal.NewFromInt(4500)))
}

func TestBalanceEmpty(t *testing.T) {
	assert.True(t, Balance(nil).IsZero())
}

func TestBalanceOverpaid(t *testing.T) {
	// Payments beyond the credit taken leave a negative balance (we owe them).
	txns := []Transaction{
		{Kind: KindCredit, Amount: decimal.NewFromInt(1000)},
		{Kind: KindPayment, Amount: decimal.NewFromInt(1500)},
	}

	assert.True(t, Balance(txns).Equal(decimal.NewFromInt(-500)))
}

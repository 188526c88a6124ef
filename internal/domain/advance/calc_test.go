package advance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	advances := []Advance{
		{Amount: decimal.NewFromInt(1000), IsDeducted: true},
		{Amount: decimal.NewFromInt(500)},
		{Amount: decimal.NewFromInt(250)},
	}

	totals := Totals(advances)

	assert.True(t, totals.Total.Equal(decimal.NewFromInt(1750)))
	assert.True(t, totals.Deducted.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.Pending.Equal(decimal.NewFromInt(750)))
}

func TestTotalsEmpty(t *testing.T) {
	totals := Totals(nil)

	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Deducted.IsZero())
	assert.True(t, totals.Pending.IsZero())
}

func TestTotalsPartitionIsComplete(t *testing.T) {
	advances := []Advance{
		{Amount: decimal.NewFromFloat(333.33), IsDeducted: true},
		{Amount: decimal.NewFromFloat(666.67)},
		{Amount: decimal.NewFromFloat(0.01), IsDeducted: true},
	}

	totals := Totals(advances)

	assert.True(t, totals.Deducted.Add(totals.Pending).Equal(totals.Total))
}

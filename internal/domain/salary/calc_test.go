package salary

import (
	"testing"

	"github.com/girnar-group/staffops-backend-go/internal/domain/advance"
	"github.com/girnar-group/staffops-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	// 30 shifts at 500/shift with 3000 advanced: payable 12000.
	calc := Compute(
		decimal.NewFromInt(500),
		attendance.MonthSummary{TotalShifts: 30, AbsentDays: 1},
		advance.LedgerTotals{
			Total:    decimal.NewFromInt(3000),
			Deducted: decimal.NewFromInt(1000),
			Pending:  decimal.NewFromInt(2000),
		},
		decimal.Zero,
	)

	assert.True(t, calc.ShiftAmount.Equal(decimal.NewFromInt(15000)))
	assert.True(t, calc.Payable.Equal(decimal.NewFromInt(12000)))
	assert.Equal(t, 30, calc.TotalShifts)
	assert.Equal(t, 1, calc.AbsentDays)
}

func TestComputeWithCarryForward(t *testing.T) {
	calc := Compute(
		decimal.NewFromInt(400),
		attendance.MonthSummary{TotalShifts: 20},
		advance.LedgerTotals{Total: decimal.NewFromInt(500)},
		decimal.NewFromInt(2500),
	)

	// 8000 - 500 + 2500
	assert.True(t, calc.Payable.Equal(decimal.NewFromInt(10000)))
}

func TestComputeNegativePayable(t *testing.T) {
	// Advances exceeding earnings push payable below zero; the negative value
	// is carried as-is, not clamped.
	calc := Compute(
		decimal.NewFromInt(500),
		attendance.MonthSummary{TotalShifts: 2},
		advance.LedgerTotals{Total: decimal.NewFromInt(5000)},
		decimal.Zero,
	)

	assert.True(t, calc.Payable.Equal(decimal.NewFromInt(-4000)))
}

func TestComputeNegativeCarryForward(t *testing.T) {
	calc := Compute(
		decimal.NewFromInt(500),
		attendance.MonthSummary{TotalShifts: 10},
		advance.LedgerTotals{},
		decimal.NewFromInt(-4000),
	)

	assert.True(t, calc.Payable.Equal(decimal.NewFromInt(1000)))
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		month, year         int
		wantMonth, wantYear int
	}{
		{2, 2025, 1, 2025},
		{12, 2025, 11, 2025},
		{1, 2025, 12, 2024},
	}

	for _, tt := range tests {
		gotMonth, gotYear := PreviousPeriod(tt.month, tt.year)
		assert.Equal(t, tt.wantMonth, gotMonth)
		assert.Equal(t, tt.wantYear, gotYear)
	}
}

func TestCarryForwardFrom(t *testing.T) {
	t.Run("no prior record", func(t *testing.T) {
		assert.True(t, CarryForwardFrom(nil).IsZero())
	})

	t.Run("paid prior month contributes nothing", func(t *testing.T) {
		prev := &Record{IsPaid: true, Payable: decimal.NewFromInt(7000)}
		assert.True(t, CarryForwardFrom(prev).IsZero())
	})

	t.Run("unpaid prior month carries its frozen payable", func(t *testing.T) {
		prev := &Record{Payable: decimal.NewFromInt(7000)}
		assert.True(t, CarryForwardFrom(prev).Equal(decimal.NewFromInt(7000)))
	})

	t.Run("negative payable carries through", func(t *testing.T) {
		prev := &Record{Payable: decimal.NewFromInt(-1200)}
		assert.True(t, CarryForwardFrom(prev).Equal(decimal.NewFromInt(-1200)))
	})
}

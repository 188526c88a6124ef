package salary

import (
	"github.com/girnar-group/staffops-backend-go/internal/domain/advance"
	"github.com/girnar-group/staffops-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Compute combines attendance totals, the advance partition and the
// carry-forward into the month's payable amount:
//
//	shiftAmount = totalShifts × shiftRate
//	payable     = shiftAmount − totalAdvance + carryForward
//
// CarryForward may be negative (an over-advanced prior month); Payable then
// goes negative too and is carried as-is, which is what keeps chained months
// drift-free. The function only fills the arithmetic terms; identity and
// payment state are layered on by the caller.
func Compute(shiftRate decimal.Decimal, att attendance.MonthSummary, adv advance.LedgerTotals, carryForward decimal.Decimal) Calculation {
	shiftAmount := decimal.NewFromInt(int64(att.TotalShifts)).Mul(shiftRate)
	payable := shiftAmount.Sub(adv.Total).Add(carryForward)

	return Calculation{
		ShiftRate:       shiftRate,
		TotalShifts:     att.TotalShifts,
		AbsentDays:      att.AbsentDays,
		ShiftAmount:     shiftAmount,
		TotalAdvance:    adv.Total,
		DeductedAdvance: adv.Deducted,
		PendingAdvance:  adv.Pending,
		CarryForward:    carryForward,
		Payable:         payable,
	}
}

// PreviousPeriod returns the calendar month immediately before (month, year),
// wrapping January back to December of the prior year.
func PreviousPeriod(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// CarryForwardFrom resolves the amount a prior month's record feeds into the
// next month: nothing when the month was settled, the frozen payable when it
// was not. The stored payable may itself contain an earlier carry-forward,
// so unpaid months chain without any recursion here.
func CarryForwardFrom(prev *Record) decimal.Decimal {
	if prev == nil || prev.IsPaid {
		return decimal.Zero
	}
	return prev.Payable
}

package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record - the persisted outcome of a salary payment, one per
// (staff, month, year). It is written only by the pay action; viewing a
// month's figures never persists anything. Once written, the computed fields
// are frozen history and the next month's carry-forward reads Payable off
// this row when it is still unpaid.
type Record struct {
	ID           string
	StaffID      string
	Month        int
	Year         int
	ShiftRate    decimal.Decimal
	TotalShifts  int
	ShiftAmount  decimal.Decimal
	TotalAdvance decimal.Decimal
	CarryForward decimal.Decimal
	Payable      decimal.Decimal
	IsPaid       bool
	PaidDate     *time.Time
	PaidBy       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	StaffName *string
}

// Calculation is the live, derived view of a staff member's month. It is
// recomputed from current rows on every read and carries every intermediate
// term so screens and exports never redo the arithmetic.
type Calculation struct {
	StaffID         string
	StaffName       string
	Category        string
	Month           int
	Year            int
	ShiftRate       decimal.Decimal
	TotalShifts     int
	AbsentDays      int
	ShiftAmount     decimal.Decimal
	TotalAdvance    decimal.Decimal
	DeductedAdvance decimal.Decimal
	PendingAdvance  decimal.Decimal
	CarryForward    decimal.Decimal
	Payable         decimal.Decimal
	IsPaid          bool
	PaidDate        *time.Time
}

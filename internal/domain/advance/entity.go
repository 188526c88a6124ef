package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance - a cash payment to staff ahead of salary settlement. IsDeducted
// flips when a salary payment consumes the advance, or through an explicit
// administrative override.
type Advance struct {
	ID         string
	StaffID    string
	Amount     decimal.Decimal
	Date       time.Time
	Note       *string
	IsDeducted bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	StaffName *string
}

// LedgerTotals partitions a set of advances by deduction state.
// Deducted + Pending always equals Total.
type LedgerTotals struct {
	Total    decimal.Decimal
	Deducted decimal.Decimal
	Pending  decimal.Decimal
}

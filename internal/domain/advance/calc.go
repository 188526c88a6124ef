package advance

import "github.com/shopspring/decimal"

// Totals partitions advances by is_deducted and sums each side. Every row
// lands in exactly one partition, so Deducted.Add(Pending) equals Total.
func Totals(advances []Advance) LedgerTotals {
	totals := LedgerTotals{
		Total:    decimal.Zero,
		Deducted: decimal.Zero,
		Pending:  decimal.Zero,
	}
	for _, a := range advances {
		totals.Total = totals.Total.Add(a.Amount)
		if a.IsDeducted {
			totals.Deducted = totals.Deducted.Add(a.Amount)
		} else {
			totals.Pending = totals.Pending.Add(a.Amount)
		}
	}
	return totals
}

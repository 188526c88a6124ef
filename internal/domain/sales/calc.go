package sales

import "github.com/shopspring/decimal"

// Sum aggregates sales rows by fuel and payment mode.
func Sum(rows []Sale) Totals {
	totals := Totals{
		TotalAmount:  decimal.Zero,
		PetrolAmount: decimal.Zero,
		DieselAmount: decimal.Zero,
		CashAmount:   decimal.Zero,
		CreditAmount: decimal.Zero,
	}
	for _, s := range rows {
		totals.TotalAmount = totals.TotalAmount.Add(s.Amount)
		if s.Fuel == FuelPetrol {
			totals.PetrolAmount = totals.PetrolAmount.Add(s.Amount)
		} else {
			totals.DieselAmount = totals.DieselAmount.Add(s.Amount)
		}
		if s.PaymentMode == ModeCash {
			totals.CashAmount = totals.CashAmount.Add(s.Amount)
		} else {
			totals.CreditAmount = totals.CreditAmount.Add(s.Amount)
		}
	}
	return totals
}

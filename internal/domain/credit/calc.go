package credit

import "github.com/shopspring/decimal"

// Balance folds a party's transactions into the outstanding amount:
// credits add, payments subtract. Positive means the party owes.
func Balance(txns []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		switch t.Kind {
		case KindCredit:
			balance = balance.Add(t.Amount)
		case KindPayment:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

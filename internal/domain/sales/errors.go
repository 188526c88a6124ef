package sales

import "errors"

var (
	ErrSaleNotFound       = errors.New("sale not found")
	ErrCreditPartyMissing = errors.New("credit sale requires a party")
)

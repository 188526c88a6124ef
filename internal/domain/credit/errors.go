package credit

import "errors"

var (
	ErrPartyNotFound       = errors.New("credit party not found")
	ErrTransactionNotFound = errors.New("credit transaction not found")
)

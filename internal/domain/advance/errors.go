package advance

import "errors"

var (
	ErrAdvanceNotFound = errors.New("advance not found")
	ErrInvalidAmount   = errors.New("advance amount must be positive")
)

package salary

import "errors"

var (
	ErrRecordNotFound = errors.New("salary record not found")
	ErrNotPaid        = errors.New("salary record is not marked paid")
	ErrInvalidPeriod  = errors.New("invalid salary period")
)

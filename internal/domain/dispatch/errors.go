package dispatch

import "errors"

var (
	ErrEntryNotFound     = errors.New("dispatch entry not found")
	ErrDriverNotInRoster = errors.New("driver must be on the transport roster")
)

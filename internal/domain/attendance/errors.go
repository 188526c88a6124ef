package attendance

import "errors"

var (
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrInvalidStatus     = errors.New("invalid attendance status")
	ErrInvalidShiftCount = errors.New("shift count must be 1 or 2")
)

package overtime

import "errors"

var (
	ErrOvertimeNotFound = errors.New("overtime request not found")
	ErrInvalidTimeSpan  = errors.New("end time must be after start time")
)

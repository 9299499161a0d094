package correction

import "errors"

var (
	ErrCorrectionNotFound = errors.New("correction request not found")
)

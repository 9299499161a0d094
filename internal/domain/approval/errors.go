package approval

import "errors"

var (
	ErrInvalidStage      = errors.New("invalid approval stage")
	ErrStageNotPermitted = errors.New("actor may not decide this stage")
	ErrNotSubmitted      = errors.New("goal has not been submitted")
)

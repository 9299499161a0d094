package performance

import "errors"

var (
	ErrGoalNotFound       = errors.New("goal not found")
	ErrCompetencyNotFound = errors.New("competency not found")
	ErrGoalNotDraft       = errors.New("goal is not in draft state")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
	ErrInvalidScore       = errors.New("score must be between 0 and 5")
)

package approval

import (
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
)

// DecisionRequest carries one stage decision on a request.
type DecisionRequest struct {
	Stage   string `json:"stage"`
	Approve bool   `json:"approve"`
}

func (r *DecisionRequest) Validate() error {
	if !ValidStage(Stage(r.Stage)) {
		return validator.ValidationErrors{{
			Field:   "stage",
			Message: "stage must be one of manager, hr",
		}}
	}
	return nil
}

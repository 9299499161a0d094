package correction

import (
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
)

type CreateCorrectionRequest struct {
	Date            string  `json:"date"`
	NewInTime       *string `json:"new_in_time,omitempty"`
	NewOutTime      *string `json:"new_out_time,omitempty"`
	NewLunchMinutes *int    `json:"new_lunch_minutes,omitempty"`
	Reason          *string `json:"reason,omitempty"`
}

func (r *CreateCorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
	}
	if r.NewInTime != nil && !validator.IsValidClock(*r.NewInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_in_time",
			Message: "new_in_time must be formatted as HH:MM",
		})
	}
	if r.NewOutTime != nil && !validator.IsValidClock(*r.NewOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_out_time",
			Message: "new_out_time must be formatted as HH:MM",
		})
	}
	if r.NewLunchMinutes != nil && *r.NewLunchMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_lunch_minutes",
			Message: "new_lunch_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

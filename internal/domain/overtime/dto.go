package overtime

import (
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/worktime"
)

type CreateOvertimeRequest struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be formatted as HH:MM",
		})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be formatted as HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Span returns the requested overtime span in minutes, wrapping past
// midnight when end is numerically earlier than start.
func (r *CreateOvertimeRequest) Span() (int, error) {
	start, err := worktime.ToMinutes(r.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := worktime.ToMinutes(r.EndTime)
	if err != nil {
		return 0, err
	}
	if end < start {
		end += 24 * 60
	}
	return end - start, nil
}

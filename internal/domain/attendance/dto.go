package attendance

import (
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/worktime"
)

type ClockInRequest struct {
	Date   string  `json:"date"`
	InTime string  `json:"in_time"`
	Mode   *string `json:"mode,omitempty"`
	Note   *string `json:"note,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
	}
	if !validator.IsValidClock(r.InTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "in_time",
			Message: "in_time must be formatted as HH:MM",
		})
	}
	if r.Mode != nil {
		switch WorkMode(*r.Mode) {
		case ModeOffice, ModeVacation, ModeOther:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "mode",
				Message: "mode must be one of office, vacation, other",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	Date         string `json:"date"`
	OutTime      string `json:"out_time"`
	LunchMinutes *int   `json:"lunch_minutes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
	}
	if !validator.IsValidClock(r.OutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "out_time",
			Message: "out_time must be formatted as HH:MM",
		})
	}
	if r.LunchMinutes != nil && *r.LunchMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "lunch_minutes",
			Message: "lunch_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayResponse pairs a raw record with its computed minute buckets.
type DayResponse struct {
	ID           int64            `json:"id"`
	EmployeeID   int64            `json:"employee_id"`
	Date         string           `json:"date"`
	InTime       *string          `json:"in_time"`
	OutTime      *string          `json:"out_time"`
	LunchMinutes int              `json:"lunch_minutes"`
	Mode         WorkMode         `json:"mode"`
	Note         *string          `json:"note,omitempty"`
	Buckets      worktime.Buckets `json:"buckets"`
}

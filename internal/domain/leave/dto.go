package leave

import (
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Type      string  `json:"type"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be formatted as YYYY-MM-DD",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be formatted as YYYY-MM-DD",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if !ValidType(LeaveType(r.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of annual, sick, unpaid, special",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetBalanceTotalRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Total      float64 `json:"total"`
}

func (r *SetBalanceTotalRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Total < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total",
			Message: "total must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BalanceResponse struct {
	EmployeeID  int64   `json:"employee_id"`
	AnnualTotal float64 `json:"annual_total"`
	AnnualUsed  float64 `json:"annual_used"`
	Remaining   float64 `json:"remaining"`
}

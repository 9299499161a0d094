package employee

import (
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNo   string  `json:"employee_no"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	DepartmentID *int64  `json:"department_id,omitempty"`
	Position     *string `json:"position,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

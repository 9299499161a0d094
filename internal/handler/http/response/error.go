package response

import (
	"errors"
	"net/http"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/correction"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/employee"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/leave"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/department"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/holiday"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/overtime"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/worktime"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and account errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrApproverAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Approval flow errors
	case errors.Is(err, approval.ErrInvalidStage):
		BadRequest(w, "Invalid approval stage", nil)
	case errors.Is(err, approval.ErrStageNotPermitted):
		Forbidden(w, "Actor may not decide this stage")
	case errors.Is(err, approval.ErrNotSubmitted):
		Conflict(w, "Goal has not been submitted")

	// Attendance errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Not clocked in yet")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, worktime.ErrInvalidClock):
		BadRequest(w, "Clock value must be formatted as HH:MM", nil)

	// Leave errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Overtime and correction errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrInvalidTimeSpan):
		BadRequest(w, "End time must be after start time", nil)
	case errors.Is(err, correction.ErrCorrectionNotFound):
		NotFound(w, "Correction request not found")

	// Performance errors
	case errors.Is(err, performance.ErrGoalNotFound):
		NotFound(w, "Goal not found")
	case errors.Is(err, performance.ErrCompetencyNotFound):
		NotFound(w, "Competency not found")
	case errors.Is(err, performance.ErrGoalNotDraft):
		Conflict(w, "Goal is not in draft state")
	case errors.Is(err, performance.ErrInvalidProgress),
		errors.Is(err, performance.ErrInvalidScore):
		BadRequest(w, err.Error(), nil)

	// Master data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNoExists):
		Conflict(w, "Employee number already registered")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

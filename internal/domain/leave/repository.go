package leave

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	// GetVisible fetches one request within a visibility scope; a record
	// outside the scope reads as not found.
	GetVisible(ctx context.Context, id int64, vis user.Visibility) (LeaveRequest, error)
	List(ctx context.Context, vis user.Visibility) ([]LeaveRequest, error)
	SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error
	SetStatus(ctx context.Context, id int64, status approval.Status) error
	// ResetToPending clears one stage and the overall status back to
	// pending in a single statement; backs the overdraw rollback.
	ResetToPending(ctx context.Context, id int64, stage approval.Stage) error
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	// GetOrCreate returns the employee's balance, inserting the default
	// entitlement row if absent. Idempotent.
	GetOrCreate(ctx context.Context, employeeID int64) (LeaveBalance, error)
	// Debit consumes days from the annual entitlement. Returns false and
	// applies nothing if the debit would exceed the total.
	Debit(ctx context.Context, employeeID int64, days float64) (bool, error)
	SetTotal(ctx context.Context, employeeID int64, total float64) error
	GetByEmployee(ctx context.Context, employeeID int64) (LeaveBalance, error)
}

package leave

import (
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
)

type LeaveType string

const (
	TypeAnnual  LeaveType = "annual"  // Subject to the balance ledger
	TypeSick    LeaveType = "sick"    // Unrestricted by balance
	TypeUnpaid  LeaveType = "unpaid"  // Unrestricted by balance
	TypeSpecial LeaveType = "special" // Unrestricted by balance
)

func ValidType(t LeaveType) bool {
	switch t {
	case TypeAnnual, TypeSick, TypeUnpaid, TypeSpecial:
		return true
	}
	return false
}

// LeaveRequest is a date-range request gated by two-stage approval.
// Status is derived from the stage pair and only written by the
// derivation rule inside the same transaction as the stage write.
type LeaveRequest struct {
	ID            int64
	EmployeeID    int64
	StartDate     time.Time
	EndDate       time.Time
	Type          LeaveType
	Reason        *string
	ManagerStatus approval.StageStatus
	HRStatus      approval.StageStatus
	Status        approval.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join fields for listings
	EmployeeName *string
}

// Days returns the inclusive day count of the requested range.
func (r LeaveRequest) Days() float64 {
	return float64(int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1)
}

// LeaveBalance is one employee's annual leave ledger row.
// Invariant: AnnualUsed <= AnnualTotal after every successful debit.
type LeaveBalance struct {
	ID          int64
	EmployeeID  int64
	AnnualTotal float64
	AnnualUsed  float64
	UpdatedAt   time.Time
}

// Remaining days on the annual entitlement.
func (b LeaveBalance) Remaining() float64 {
	return b.AnnualTotal - b.AnnualUsed
}

package overtime

import (
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
)

// OvertimeRequest records extra work on one date. Approval has no side
// effect beyond the derived status; the minutes feed reporting only.
type OvertimeRequest struct {
	ID            int64
	EmployeeID    int64
	Date          time.Time
	StartTime     string
	EndTime       string
	Minutes       int
	Reason        *string
	ManagerStatus approval.StageStatus
	HRStatus      approval.StageStatus
	Status        approval.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join fields for listings
	EmployeeName *string
}

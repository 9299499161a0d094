package correction

import (
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
)

// CorrectionRequest asks to replace the clock values of one attendance
// day. On final approval the referenced (employee_id, date) attendance
// row is upserted with the replacement values.
type CorrectionRequest struct {
	ID              int64
	EmployeeID      int64
	Date            time.Time
	NewInTime       *string
	NewOutTime      *string
	NewLunchMinutes *int
	Reason          *string
	ManagerStatus   approval.StageStatus
	HRStatus        approval.StageStatus
	Status          approval.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join fields for listings
	EmployeeName *string
}

package attendance

import "time"

type WorkMode string

const (
	ModeOffice   WorkMode = "office"
	ModeVacation WorkMode = "vacation"
	ModeOther    WorkMode = "other"
)

// Record is one employee's attendance row for one calendar date.
// In/Out times are "HH:MM" clock strings; nil means not clocked yet.
type Record struct {
	ID           int64
	EmployeeID   int64
	Date         time.Time
	InTime       *string
	OutTime      *string
	LunchMinutes int
	Mode         WorkMode
	Note         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join fields for listings
	EmployeeName *string
}

package report

import (
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/worktime"
)

// OverviewRow is one employee joined with their attendance at a base
// date; the attendance side is nil when no row exists for that day.
type OverviewRow struct {
	EmployeeID   int64   `json:"employee_id"`
	EmployeeNo   string  `json:"employee_no"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	DepartmentID *int64  `json:"department_id,omitempty"`
	Position     *string `json:"position,omitempty"`
	InTime       *string `json:"in_time,omitempty"`
	OutTime      *string `json:"out_time,omitempty"`
	LunchMinutes *int    `json:"lunch_minutes,omitempty"`
	Mode         *string `json:"mode,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// OverviewFilter narrows the department overview listing.
type OverviewFilter struct {
	BaseDate     time.Time
	DepartmentID *int64
	// Query is matched case-insensitively as a substring over
	// name, email and employee number.
	Query *string
}

// WeekDay is one day of a weekly summary with its computed buckets.
type WeekDay struct {
	Date    string           `json:"date"`
	InTime  *string          `json:"in_time,omitempty"`
	OutTime *string          `json:"out_time,omitempty"`
	Buckets worktime.Buckets `json:"buckets"`
}

// WeeklySummary aggregates one employee's buckets across an ISO week.
// OverCap warns that the total exceeded the configured weekly cap; it
// is a signal, never a blocking error.
type WeeklySummary struct {
	EmployeeID     int64            `json:"employee_id"`
	WeekStart      string           `json:"week_start"`
	WeekEnd        string           `json:"week_end"`
	Days           []WeekDay        `json:"days"`
	Totals         worktime.Buckets `json:"totals"`
	WeeklyCap      int              `json:"weekly_cap_minutes"`
	OverCap        bool             `json:"over_cap"`
	TotalFormatted string           `json:"total_formatted"`
}

// PerformerStanding names the employee at one end of the progress
// ranking. Ties break by first-seen order.
type PerformerStanding struct {
	EmployeeID int64   `json:"employee_id"`
	Average    float64 `json:"average"`
	Count      int64   `json:"count"`
}

// Dashboard is the quarter/period performance summary.
type Dashboard struct {
	Quarter         string                        `json:"quarter"`
	Period          string                        `json:"period"`
	GoalAverages    []performance.EmployeeAverage `json:"goal_averages"`
	ReviewAverages  []performance.EmployeeAverage `json:"review_averages"`
	PendingGoals    int64                         `json:"pending_goals"`
	TopPerformer    *PerformerStanding            `json:"top_performer,omitempty"`
	BottomPerformer *PerformerStanding            `json:"bottom_performer,omitempty"`
}

package performance

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
)

type GoalRepository interface {
	Create(ctx context.Context, goal Goal) (Goal, error)
	GetByID(ctx context.Context, id int64) (Goal, error)
	// GetVisible fetches one goal within a visibility scope; a goal
	// outside the scope reads as not found.
	GetVisible(ctx context.Context, id int64, vis user.Visibility) (Goal, error)
	List(ctx context.Context, vis user.Visibility, quarter *string) ([]Goal, error)
	UpdateProgress(ctx context.Context, id int64, progress float64) error
	SetStatus(ctx context.Context, id int64, status approval.Status) error
	SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error
	// ProgressAverages groups average progress and goal count per
	// employee, ordered by first-seen employee id for stable ties.
	ProgressAverages(ctx context.Context, quarter *string) ([]EmployeeAverage, error)
	CountAwaitingAction(ctx context.Context) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review Review) (Review, error)
	List(ctx context.Context, vis user.Visibility, period *string) ([]Review, error)
	ScoreAverages(ctx context.Context, period *string) ([]EmployeeAverage, error)
}

type CompetencyRepository interface {
	Create(ctx context.Context, c Competency) (Competency, error)
	List(ctx context.Context) ([]Competency, error)
	UpsertEmployeeLevel(ctx context.Context, ec EmployeeCompetency) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]EmployeeCompetency, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, f Feedback) (Feedback, error)
	ListReceived(ctx context.Context, toUserID int64) ([]Feedback, error)
	ListGiven(ctx context.Context, fromUserID int64) ([]Feedback, error)
}

// EmployeeAverage is one employee's aggregate for dashboards.
type EmployeeAverage struct {
	EmployeeID int64   `json:"employee_id"`
	Average    float64 `json:"average"`
	Count      int64   `json:"count"`
}

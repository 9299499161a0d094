package performance

import (
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
)

// Goal follows a draft -> submitted -> {approved, rejected} lifecycle.
// The two-stage derivation only becomes meaningful after submission;
// the explicit Submit transition is a prerequisite, not a stage write.
type Goal struct {
	ID            int64
	EmployeeID    int64
	Quarter       string // e.g. 2025Q3
	Title         string
	Description   *string
	Weight        float64
	Progress      float64
	ManagerStatus approval.StageStatus
	HRStatus      approval.StageStatus
	Status        approval.Status
	UpdatedAt     time.Time

	// Join fields for listings
	EmployeeName *string
}

type ReviewCategory string

const (
	CategorySelf    ReviewCategory = "self"
	CategoryPeer    ReviewCategory = "peer"
	CategoryManager ReviewCategory = "manager"
)

type Review struct {
	ID          int64
	EmployeeID  int64
	ReviewerID  int64
	Period      string // e.g. 2025Q3
	Category    ReviewCategory
	Score       float64
	Comment     *string
	SubmittedAt time.Time
}

type Competency struct {
	ID          int64
	Name        string
	Description *string
}

// EmployeeCompetency is an assessed level, keyed (employee, competency).
type EmployeeCompetency struct {
	EmployeeID   int64
	CompetencyID int64
	Level        int
	Note         *string

	// Join field
	CompetencyName *string
}

type FeedbackVisibility string

const (
	FeedbackPrivate FeedbackVisibility = "private"
	FeedbackManager FeedbackVisibility = "manager"
	FeedbackPublic  FeedbackVisibility = "public"
)

type Feedback struct {
	ID         int64
	FromUserID int64
	ToUserID   int64
	Comment    string
	Visibility FeedbackVisibility
	CreatedAt  time.Time
}

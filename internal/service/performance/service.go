package performance

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/audit"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/hanbit-hr/worktime-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type Service struct {
	db *database.DB
	performance.GoalRepository
	performance.ReviewRepository
	performance.CompetencyRepository
	performance.FeedbackRepository
	audit.AuditRepository
}

func NewService(
	db *database.DB,
	goalRepository performance.GoalRepository,
	reviewRepository performance.ReviewRepository,
	competencyRepository performance.CompetencyRepository,
	feedbackRepository performance.FeedbackRepository,
	auditRepository audit.AuditRepository,
) *Service {
	return &Service{
		db:                   db,
		GoalRepository:       goalRepository,
		ReviewRepository:     reviewRepository,
		CompetencyRepository: competencyRepository,
		FeedbackRepository:   feedbackRepository,
		AuditRepository:      auditRepository,
	}
}

// CreateGoal drafts a goal for the quarter.
func (s *Service) CreateGoal(ctx context.Context, req performance.CreateGoalRequest) (performance.Goal, error) {
	goal := performance.Goal{
		EmployeeID:  req.EmployeeID,
		Quarter:     req.Quarter,
		Title:       req.Title,
		Description: req.Description,
		Weight:      req.Weight,
	}
	return s.GoalRepository.Create(ctx, goal)
}

// SubmitGoal moves a draft into the approval flow. Only the owner or a
// privileged actor may submit, and only from draft.
func (s *Service) SubmitGoal(ctx context.Context, actor user.Actor, id int64) (performance.Goal, error) {
	var submitted performance.Goal
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		goal, err := s.GoalRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if goal.Status != approval.StatusDraft {
			return performance.ErrGoalNotDraft
		}
		if !actor.IsPrivileged() && (actor.EmployeeID == nil || *actor.EmployeeID != goal.EmployeeID) {
			return user.ErrInsufficientPermissions
		}

		if err := s.GoalRepository.SetStatus(txCtx, id, approval.StatusSubmitted); err != nil {
			return err
		}
		goal.Status = approval.StatusSubmitted
		submitted = goal

		return s.AuditRepository.Append(txCtx, audit.Entry{
			ActorUserID: actor.UserID,
			Action:      "goal_submit",
			TargetType:  "goal",
			TargetID:    id,
		})
	})
	if err != nil {
		return performance.Goal{}, err
	}
	return submitted, nil
}

// UpdateProgress sets the completion percentage on a goal.
func (s *Service) UpdateProgress(ctx context.Context, actor user.Actor, id int64, req performance.UpdateProgressRequest) error {
	goal, err := s.GoalRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsPrivileged() && (actor.EmployeeID == nil || *actor.EmployeeID != goal.EmployeeID) {
		return user.ErrInsufficientPermissions
	}
	return s.GoalRepository.UpdateProgress(ctx, id, req.Progress)
}

// ListGoals returns goals within the actor's visibility scope.
func (s *Service) ListGoals(ctx context.Context, actor user.Actor, quarter *string) ([]performance.Goal, error) {
	return s.GoalRepository.List(ctx, user.VisibilityFor(actor), quarter)
}

// GetGoal fetches one goal within the actor's visibility scope. An
// out-of-scope id reads as not found.
func (s *Service) GetGoal(ctx context.Context, actor user.Actor, id int64) (performance.Goal, error) {
	return s.GoalRepository.GetVisible(ctx, id, user.VisibilityFor(actor))
}

// CreateReview records a scored review of an employee.
func (s *Service) CreateReview(ctx context.Context, reviewerID int64, req performance.CreateReviewRequest) (performance.Review, error) {
	review := performance.Review{
		EmployeeID: req.EmployeeID,
		ReviewerID: reviewerID,
		Period:     req.Period,
		Category:   performance.ReviewCategory(req.Category),
		Score:      req.Score,
		Comment:    req.Comment,
	}
	return s.ReviewRepository.Create(ctx, review)
}

// ListReviews returns reviews within the actor's visibility scope.
func (s *Service) ListReviews(ctx context.Context, actor user.Actor, period *string) ([]performance.Review, error) {
	return s.ReviewRepository.List(ctx, user.VisibilityFor(actor), period)
}

// CreateCompetency adds a competency to the catalog.
func (s *Service) CreateCompetency(ctx context.Context, name string, description *string) (performance.Competency, error) {
	return s.CompetencyRepository.Create(ctx, performance.Competency{Name: name, Description: description})
}

func (s *Service) ListCompetencies(ctx context.Context) ([]performance.Competency, error) {
	return s.CompetencyRepository.List(ctx)
}

// SetCompetencyLevel assesses an employee on a catalog competency.
func (s *Service) SetCompetencyLevel(ctx context.Context, req performance.SetCompetencyLevelRequest) error {
	return s.CompetencyRepository.UpsertEmployeeLevel(ctx, performance.EmployeeCompetency{
		EmployeeID:   req.EmployeeID,
		CompetencyID: req.CompetencyID,
		Level:        req.Level,
		Note:         req.Note,
	})
}

func (s *Service) EmployeeCompetencies(ctx context.Context, employeeID int64) ([]performance.EmployeeCompetency, error) {
	return s.CompetencyRepository.ListByEmployee(ctx, employeeID)
}

// GiveFeedback records free-form feedback between users.
func (s *Service) GiveFeedback(ctx context.Context, fromUserID int64, req performance.GiveFeedbackRequest) (performance.Feedback, error) {
	return s.FeedbackRepository.Create(ctx, performance.Feedback{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Comment:    req.Comment,
		Visibility: performance.FeedbackVisibility(req.Visibility),
	})
}

func (s *Service) FeedbackReceived(ctx context.Context, userID int64) ([]performance.Feedback, error) {
	return s.FeedbackRepository.ListReceived(ctx, userID)
}

func (s *Service) FeedbackGiven(ctx context.Context, userID int64) ([]performance.Feedback, error) {
	return s.FeedbackRepository.ListGiven(ctx, userID)
}

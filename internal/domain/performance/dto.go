package performance

import (
	"regexp"

	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
)

var quarterRegex = regexp.MustCompile(`^\d{4}Q[1-4]$`)

// IsValidQuarter checks the "2025Q3" quarter/period notation.
func IsValidQuarter(q string) bool {
	return quarterRegex.MatchString(q)
}

type CreateGoalRequest struct {
	EmployeeID  int64   `json:"employee_id"`
	Quarter     string  `json:"quarter"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Weight      float64 `json:"weight"`
}

func (r *CreateGoalRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !IsValidQuarter(r.Quarter) {
		errs = append(errs, validator.ValidationError{
			Field:   "quarter",
			Message: "quarter must be formatted as YYYYQn",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if r.Weight <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weight",
			Message: "weight must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProgressRequest struct {
	Progress float64 `json:"progress"`
}

func (r *UpdateProgressRequest) Validate() error {
	if r.Progress < 0 || r.Progress > 100 {
		return validator.ValidationErrors{{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		}}
	}
	return nil
}

type CreateReviewRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Period     string  `json:"period"`
	Category   string  `json:"category"`
	Score      float64 `json:"score"`
	Comment    *string `json:"comment,omitempty"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !IsValidQuarter(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be formatted as YYYYQn",
		})
	}
	switch ReviewCategory(r.Category) {
	case CategorySelf, CategoryPeer, CategoryManager:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of self, peer, manager",
		})
	}
	if r.Score < 0 || r.Score > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "score",
			Message: "score must be between 0 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetCompetencyLevelRequest struct {
	EmployeeID   int64   `json:"employee_id"`
	CompetencyID int64   `json:"competency_id"`
	Level        int     `json:"level"`
	Note         *string `json:"note,omitempty"`
}

func (r *SetCompetencyLevelRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.CompetencyID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "competency_id",
			Message: "competency_id is required",
		})
	}
	if r.Level < 1 || r.Level > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GiveFeedbackRequest struct {
	ToUserID   int64  `json:"to_user_id"`
	Comment    string `json:"comment"`
	Visibility string `json:"visibility"`
}

func (r *GiveFeedbackRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ToUserID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "to_user_id",
			Message: "to_user_id is required",
		})
	}
	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment is required",
		})
	}
	switch FeedbackVisibility(r.Visibility) {
	case FeedbackPrivate, FeedbackManager, FeedbackPublic:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "visibility",
			Message: "visibility must be one of private, manager, public",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

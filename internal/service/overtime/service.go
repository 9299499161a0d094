package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/overtime"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
)

type Service struct {
	db *database.DB
	overtime.OvertimeRepository
}

func NewService(db *database.DB, overtimeRepository overtime.OvertimeRepository) *Service {
	return &Service{db: db, OvertimeRepository: overtimeRepository}
}

// CreateRequest files an overtime request. The minute span is computed
// at filing time so approvers and reports never re-derive it.
func (s *Service) CreateRequest(ctx context.Context, employeeID int64, req overtime.CreateOvertimeRequest) (overtime.OvertimeRequest, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to parse date: %w", err)
	}

	minutes, err := req.Span()
	if err != nil {
		return overtime.OvertimeRequest{}, err
	}
	if minutes <= 0 {
		return overtime.OvertimeRequest{}, overtime.ErrInvalidTimeSpan
	}

	request := overtime.OvertimeRequest{
		EmployeeID: employeeID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Minutes:    minutes,
		Reason:     req.Reason,
	}
	return s.OvertimeRepository.Create(ctx, request)
}

// List returns overtime requests within the actor's visibility scope.
func (s *Service) List(ctx context.Context, actor user.Actor) ([]overtime.OvertimeRequest, error) {
	return s.OvertimeRepository.List(ctx, user.VisibilityFor(actor))
}

// Get fetches one request within the actor's visibility scope. An
// out-of-scope id reads as not found.
func (s *Service) Get(ctx context.Context, actor user.Actor, id int64) (overtime.OvertimeRequest, error) {
	return s.OvertimeRepository.GetVisible(ctx, id, user.VisibilityFor(actor))
}

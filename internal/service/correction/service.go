package correction

import (
	"context"
	"fmt"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/correction"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
)

type Service struct {
	db *database.DB
	correction.CorrectionRepository
}

func NewService(db *database.DB, correctionRepository correction.CorrectionRepository) *Service {
	return &Service{db: db, CorrectionRepository: correctionRepository}
}

// CreateRequest files an attendance correction. The replacement values
// stay inert until the request fully clears both stages.
func (s *Service) CreateRequest(ctx context.Context, employeeID int64, req correction.CreateCorrectionRequest) (correction.CorrectionRequest, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return correction.CorrectionRequest{}, fmt.Errorf("failed to parse date: %w", err)
	}

	request := correction.CorrectionRequest{
		EmployeeID:      employeeID,
		Date:            date,
		NewInTime:       req.NewInTime,
		NewOutTime:      req.NewOutTime,
		NewLunchMinutes: req.NewLunchMinutes,
		Reason:          req.Reason,
	}
	return s.CorrectionRepository.Create(ctx, request)
}

// List returns correction requests within the actor's visibility scope.
func (s *Service) List(ctx context.Context, actor user.Actor) ([]correction.CorrectionRequest, error) {
	return s.CorrectionRepository.List(ctx, user.VisibilityFor(actor))
}

// Get fetches one request within the actor's visibility scope. An
// out-of-scope id reads as not found.
func (s *Service) Get(ctx context.Context, actor user.Actor, id int64) (correction.CorrectionRequest, error) {
	return s.CorrectionRepository.GetVisible(ctx, id, user.VisibilityFor(actor))
}

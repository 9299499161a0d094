package correction

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
)

type CorrectionRepository interface {
	Create(ctx context.Context, request CorrectionRequest) (CorrectionRequest, error)
	GetByID(ctx context.Context, id int64) (CorrectionRequest, error)
	// GetVisible fetches one request within a visibility scope; a record
	// outside the scope reads as not found.
	GetVisible(ctx context.Context, id int64, vis user.Visibility) (CorrectionRequest, error)
	List(ctx context.Context, vis user.Visibility) ([]CorrectionRequest, error)
	SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error
	SetStatus(ctx context.Context, id int64, status approval.Status) error
}

package overtime

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
)

type OvertimeRepository interface {
	Create(ctx context.Context, request OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id int64) (OvertimeRequest, error)
	// GetVisible fetches one request within a visibility scope; a record
	// outside the scope reads as not found.
	GetVisible(ctx context.Context, id int64, vis user.Visibility) (OvertimeRequest, error)
	List(ctx context.Context, vis user.Visibility) ([]OvertimeRequest, error)
	SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error
	SetStatus(ctx context.Context, id int64, status approval.Status) error
}

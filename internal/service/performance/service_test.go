package performance

import (
	"context"
	"testing"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGoalRepo struct {
	goals map[int64]performance.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[int64]performance.Goal)}
}

func (f *fakeGoalRepo) Create(ctx context.Context, goal performance.Goal) (performance.Goal, error) {
	goal.ID = int64(len(f.goals) + 1)
	f.goals[goal.ID] = goal
	return goal, nil
}

func (f *fakeGoalRepo) GetByID(ctx context.Context, id int64) (performance.Goal, error) {
	goal, ok := f.goals[id]
	if !ok {
		return performance.Goal{}, performance.ErrGoalNotFound
	}
	return goal, nil
}

func (f *fakeGoalRepo) GetVisible(ctx context.Context, id int64, vis user.Visibility) (performance.Goal, error) {
	goal, err := f.GetByID(ctx, id)
	if err != nil {
		return performance.Goal{}, err
	}
	if vis.EmployeeID != nil && goal.EmployeeID != *vis.EmployeeID {
		return performance.Goal{}, performance.ErrGoalNotFound
	}
	if vis.ManagerApprovedOnly && goal.ManagerStatus != approval.StageApproved {
		return performance.Goal{}, performance.ErrGoalNotFound
	}
	return goal, nil
}

func (f *fakeGoalRepo) List(ctx context.Context, vis user.Visibility, quarter *string) ([]performance.Goal, error) {
	return nil, nil
}

func (f *fakeGoalRepo) UpdateProgress(ctx context.Context, id int64, progress float64) error {
	goal := f.goals[id]
	goal.Progress = progress
	f.goals[id] = goal
	return nil
}

func (f *fakeGoalRepo) SetStatus(ctx context.Context, id int64, status approval.Status) error {
	goal := f.goals[id]
	goal.Status = status
	f.goals[id] = goal
	return nil
}

func (f *fakeGoalRepo) SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error {
	return nil
}

func (f *fakeGoalRepo) ProgressAverages(ctx context.Context, quarter *string) ([]performance.EmployeeAverage, error) {
	return nil, nil
}

func (f *fakeGoalRepo) CountAwaitingAction(ctx context.Context) (int64, error) {
	return 0, nil
}

func int64Ptr(n int64) *int64 { return &n }

func TestGetGoalScopesToOwner(t *testing.T) {
	goals := newFakeGoalRepo()
	svc := &Service{GoalRepository: goals}

	created, err := goals.Create(context.Background(), performance.Goal{
		EmployeeID: 99,
		Quarter:    "2025Q3",
		Title:      "Ship the billing migration",
		Status:     approval.StatusDraft,
	})
	require.NoError(t, err)

	owner := user.Actor{UserID: 12, Role: user.RoleUser, EmployeeID: int64Ptr(99)}
	got, err := svc.GetGoal(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.EmployeeID)

	stranger := user.Actor{UserID: 3, Role: user.RoleUser, EmployeeID: int64Ptr(7)}
	_, err = svc.GetGoal(context.Background(), stranger, created.ID)
	assert.ErrorIs(t, err, performance.ErrGoalNotFound)

	admin := user.Actor{UserID: 1, Role: user.RoleAdmin}
	_, err = svc.GetGoal(context.Background(), admin, created.ID)
	assert.NoError(t, err)
}

func TestUpdateProgressRejectsNonOwner(t *testing.T) {
	goals := newFakeGoalRepo()
	svc := &Service{GoalRepository: goals}

	created, err := goals.Create(context.Background(), performance.Goal{
		EmployeeID: 99,
		Quarter:    "2025Q3",
		Title:      "Close out the Q3 hiring plan",
		Status:     approval.StatusDraft,
	})
	require.NoError(t, err)

	stranger := user.Actor{UserID: 3, Role: user.RoleUser, EmployeeID: int64Ptr(7)}
	err = svc.UpdateProgress(context.Background(), stranger, created.ID, performance.UpdateProgressRequest{Progress: 50})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	owner := user.Actor{UserID: 12, Role: user.RoleUser, EmployeeID: int64Ptr(99)}
	err = svc.UpdateProgress(context.Background(), owner, created.ID, performance.UpdateProgressRequest{Progress: 50})
	require.NoError(t, err)
	assert.Equal(t, 50.0, goals.goals[created.ID].Progress)
}

package leave

import (
	"context"
	"testing"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/leave"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRequestRepo struct {
	requests []leave.LeaveRequest
	nextID   int64
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = f.nextID
	request.ManagerStatus = approval.StagePending
	request.HRStatus = approval.StagePending
	request.Status = approval.StatusPending
	f.requests = append(f.requests, request)
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	for _, request := range f.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRequestRepo) GetVisible(ctx context.Context, id int64, vis user.Visibility) (leave.LeaveRequest, error) {
	for _, request := range f.requests {
		if request.ID != id {
			continue
		}
		if vis.EmployeeID != nil && request.EmployeeID != *vis.EmployeeID {
			break
		}
		if vis.ManagerApprovedOnly && request.ManagerStatus != approval.StageApproved {
			break
		}
		return request, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRequestRepo) List(ctx context.Context, vis user.Visibility) ([]leave.LeaveRequest, error) {
	return f.requests, nil
}

func (f *fakeLeaveRequestRepo) SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error {
	return nil
}

func (f *fakeLeaveRequestRepo) SetStatus(ctx context.Context, id int64, status approval.Status) error {
	return nil
}

func (f *fakeLeaveRequestRepo) ResetToPending(ctx context.Context, id int64, stage approval.Stage) error {
	return nil
}

type fakeBalanceRepo struct {
	balances map[int64]leave.LeaveBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[int64]leave.LeaveBalance)}
}

func (f *fakeBalanceRepo) GetOrCreate(ctx context.Context, employeeID int64) (leave.LeaveBalance, error) {
	if balance, ok := f.balances[employeeID]; ok {
		return balance, nil
	}
	balance := leave.LeaveBalance{EmployeeID: employeeID, AnnualTotal: 15.0}
	f.balances[employeeID] = balance
	return balance, nil
}

func (f *fakeBalanceRepo) Debit(ctx context.Context, employeeID int64, days float64) (bool, error) {
	balance := f.balances[employeeID]
	if balance.AnnualUsed+days > balance.AnnualTotal {
		return false, nil
	}
	balance.AnnualUsed += days
	f.balances[employeeID] = balance
	return true, nil
}

func (f *fakeBalanceRepo) SetTotal(ctx context.Context, employeeID int64, total float64) error {
	balance := f.balances[employeeID]
	balance.EmployeeID = employeeID
	balance.AnnualTotal = total
	f.balances[employeeID] = balance
	return nil
}

func (f *fakeBalanceRepo) GetByEmployee(ctx context.Context, employeeID int64) (leave.LeaveBalance, error) {
	balance, ok := f.balances[employeeID]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return balance, nil
}

func int64Ptr(n int64) *int64 { return &n }

func TestCreateRequestRejectsReversedRange(t *testing.T) {
	svc := NewService(nil, &fakeLeaveRequestRepo{}, newFakeBalanceRepo())

	_, err := svc.CreateRequest(context.Background(), 7, leave.CreateLeaveRequestRequest{
		StartDate: "2025-09-05",
		EndDate:   "2025-09-01",
		Type:      "annual",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestCreateAnnualRequestSeedsBalance(t *testing.T) {
	balances := newFakeBalanceRepo()
	svc := NewService(nil, &fakeLeaveRequestRepo{}, balances)

	created, err := svc.CreateRequest(context.Background(), 7, leave.CreateLeaveRequestRequest{
		StartDate: "2025-09-01",
		EndDate:   "2025-09-03",
		Type:      "annual",
	})
	require.NoError(t, err)

	assert.Equal(t, approval.StatusPending, created.Status)
	assert.Equal(t, 3.0, created.Days())

	balance, err := balances.GetByEmployee(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 15.0, balance.AnnualTotal)
	assert.Equal(t, 0.0, balance.AnnualUsed)
}

func TestCreateSickRequestSkipsBalance(t *testing.T) {
	balances := newFakeBalanceRepo()
	svc := NewService(nil, &fakeLeaveRequestRepo{}, balances)

	_, err := svc.CreateRequest(context.Background(), 7, leave.CreateLeaveRequestRequest{
		StartDate: "2025-09-01",
		EndDate:   "2025-09-01",
		Type:      "sick",
	})
	require.NoError(t, err)

	_, err = balances.GetByEmployee(context.Background(), 7)
	assert.ErrorIs(t, err, leave.ErrBalanceNotFound)
}

func TestGetHidesOtherEmployeesRequests(t *testing.T) {
	requests := &fakeLeaveRequestRepo{}
	svc := NewService(nil, requests, newFakeBalanceRepo())

	created, err := svc.CreateRequest(context.Background(), 99, leave.CreateLeaveRequestRequest{
		StartDate: "2025-09-01",
		EndDate:   "2025-09-02",
		Type:      "sick",
	})
	require.NoError(t, err)

	owner := user.Actor{UserID: 12, Role: user.RoleUser, EmployeeID: int64Ptr(99)}
	got, err := svc.Get(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.EmployeeID)

	stranger := user.Actor{UserID: 3, Role: user.RoleUser, EmployeeID: int64Ptr(7)}
	_, err = svc.Get(context.Background(), stranger, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	admin := user.Actor{UserID: 1, Role: user.RoleAdmin}
	_, err = svc.Get(context.Background(), admin, created.ID)
	assert.NoError(t, err)
}

func TestGetGatesHROnManagerApproval(t *testing.T) {
	requests := &fakeLeaveRequestRepo{}
	svc := NewService(nil, requests, newFakeBalanceRepo())

	created, err := svc.CreateRequest(context.Background(), 7, leave.CreateLeaveRequestRequest{
		StartDate: "2025-09-01",
		EndDate:   "2025-09-01",
		Type:      "sick",
	})
	require.NoError(t, err)

	hr := user.Actor{UserID: 2, Role: user.RoleHR}
	_, err = svc.Get(context.Background(), hr, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound, "hr does not see requests the manager has not cleared")

	requests.requests[0].ManagerStatus = approval.StageApproved
	got, err := svc.Get(context.Background(), hr, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestDebitRefusesOverdraw(t *testing.T) {
	balances := newFakeBalanceRepo()

	_, err := balances.GetOrCreate(context.Background(), 7)
	require.NoError(t, err)

	ok, err := balances.Debit(context.Background(), 7, 14.0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = balances.Debit(context.Background(), 7, 2.0)
	require.NoError(t, err)
	assert.False(t, ok)

	balance, err := balances.GetByEmployee(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 14.0, balance.AnnualUsed)
}

func TestSetBalanceTotalReportsRemaining(t *testing.T) {
	balances := newFakeBalanceRepo()
	svc := NewService(nil, &fakeLeaveRequestRepo{}, balances)

	_, err := balances.GetOrCreate(context.Background(), 7)
	require.NoError(t, err)
	ok, err := balances.Debit(context.Background(), 7, 4.0)
	require.NoError(t, err)
	require.True(t, ok)

	response, err := svc.SetBalanceTotal(context.Background(), leave.SetBalanceTotalRequest{
		EmployeeID: 7,
		Total:      20.0,
	})
	require.NoError(t, err)

	assert.Equal(t, 20.0, response.AnnualTotal)
	assert.Equal(t, 4.0, response.AnnualUsed)
	assert.Equal(t, 16.0, response.Remaining)
}

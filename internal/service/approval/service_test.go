package approval

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/audit"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/correction"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/leave"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records  map[string]attendance.Record
	upserted []attendance.Record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeAttendanceRepo) key(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d#%s", employeeID, date.Format("2006-01-02"))
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	record.ID = int64(len(f.records) + 1)
	f.records[f.key(record.EmployeeID, record.Date)] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	for _, record := range f.records {
		if record.ID == id {
			return record, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	record, ok := f.records[f.key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (f *fakeAttendanceRepo) GetRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Record, error) {
	results := make([]attendance.Record, 0)
	for _, record := range f.records {
		if !record.Date.Before(start) && !record.Date.After(end) {
			results = append(results, record)
		}
	}
	return results, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, record attendance.Record) error {
	f.records[f.key(record.EmployeeID, record.Date)] = record
	return nil
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	existing, ok := f.records[f.key(record.EmployeeID, record.Date)]
	if ok {
		record.ID = existing.ID
		record.Mode = existing.Mode
	} else {
		record.ID = int64(len(f.records) + 1)
	}
	f.records[f.key(record.EmployeeID, record.Date)] = record
	f.upserted = append(f.upserted, record)
	return record, nil
}

type fakeLeaveRequestRepo struct {
	requests map[int64]leave.LeaveRequest
	resets   []approval.Stage
}

func newFakeLeaveRequestRepo() *fakeLeaveRequestRepo {
	return &fakeLeaveRequestRepo{requests: make(map[int64]leave.LeaveRequest)}
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.ID = int64(len(f.requests) + 1)
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetVisible(ctx context.Context, id int64, vis user.Visibility) (leave.LeaveRequest, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeLeaveRequestRepo) List(ctx context.Context, vis user.Visibility) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRequestRepo) SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error {
	request := f.requests[id]
	if stage == approval.StageManager {
		request.ManagerStatus = status
	} else {
		request.HRStatus = status
	}
	f.requests[id] = request
	return nil
}

func (f *fakeLeaveRequestRepo) SetStatus(ctx context.Context, id int64, status approval.Status) error {
	request := f.requests[id]
	request.Status = status
	f.requests[id] = request
	return nil
}

func (f *fakeLeaveRequestRepo) ResetToPending(ctx context.Context, id int64, stage approval.Stage) error {
	request := f.requests[id]
	if stage == approval.StageManager {
		request.ManagerStatus = approval.StagePending
	} else {
		request.HRStatus = approval.StagePending
	}
	request.Status = approval.StatusPending
	f.requests[id] = request
	f.resets = append(f.resets, stage)
	return nil
}

type fakeLeaveBalanceRepo struct {
	balances map[int64]leave.LeaveBalance
}

func newFakeLeaveBalanceRepo() *fakeLeaveBalanceRepo {
	return &fakeLeaveBalanceRepo{balances: make(map[int64]leave.LeaveBalance)}
}

func (f *fakeLeaveBalanceRepo) GetOrCreate(ctx context.Context, employeeID int64) (leave.LeaveBalance, error) {
	if balance, ok := f.balances[employeeID]; ok {
		return balance, nil
	}
	balance := leave.LeaveBalance{EmployeeID: employeeID, AnnualTotal: 15.0}
	f.balances[employeeID] = balance
	return balance, nil
}

func (f *fakeLeaveBalanceRepo) Debit(ctx context.Context, employeeID int64, days float64) (bool, error) {
	balance := f.balances[employeeID]
	if balance.AnnualUsed+days > balance.AnnualTotal {
		return false, nil
	}
	balance.AnnualUsed += days
	f.balances[employeeID] = balance
	return true, nil
}

func (f *fakeLeaveBalanceRepo) SetTotal(ctx context.Context, employeeID int64, total float64) error {
	balance := f.balances[employeeID]
	balance.EmployeeID = employeeID
	balance.AnnualTotal = total
	f.balances[employeeID] = balance
	return nil
}

func (f *fakeLeaveBalanceRepo) GetByEmployee(ctx context.Context, employeeID int64) (leave.LeaveBalance, error) {
	balance, ok := f.balances[employeeID]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return balance, nil
}

type fakeAuditRepo struct {
	entries []audit.Entry
}

func (f *fakeAuditRepo) Append(ctx context.Context, entry audit.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) Recent(ctx context.Context, limit int) ([]audit.Entry, error) {
	return f.entries, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestApplyCorrectionCreatesOfficeRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := &Service{AttendanceRepository: repo, defaultLunchMinutes: 60}

	date := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)
	err := svc.applyCorrection(context.Background(), correction.CorrectionRequest{
		EmployeeID: 7,
		Date:       date,
		NewInTime:  strPtr("09:00"),
		NewOutTime: strPtr("18:00"),
	})
	require.NoError(t, err)

	require.Len(t, repo.upserted, 1)
	record := repo.upserted[0]
	assert.Equal(t, attendance.ModeOffice, record.Mode)
	assert.Equal(t, "09:00", *record.InTime)
	assert.Equal(t, "18:00", *record.OutTime)
	assert.Equal(t, 60, record.LunchMinutes)
}

func TestApplyCorrectionMergesOverExistingRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	date := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(context.Background(), attendance.Record{
		EmployeeID:   7,
		Date:         date,
		InTime:       strPtr("08:46"),
		OutTime:      strPtr("16:46"),
		LunchMinutes: 45,
		Mode:         attendance.ModeVacation,
		Note:         strPtr("half day"),
	})
	require.NoError(t, err)

	svc := &Service{AttendanceRepository: repo, defaultLunchMinutes: 60}
	err = svc.applyCorrection(context.Background(), correction.CorrectionRequest{
		EmployeeID: 7,
		Date:       date,
		NewOutTime: strPtr("19:00"),
	})
	require.NoError(t, err)

	require.Len(t, repo.upserted, 1)
	record := repo.upserted[0]
	assert.Equal(t, "08:46", *record.InTime, "unreplaced clock values carry over")
	assert.Equal(t, "19:00", *record.OutTime)
	assert.Equal(t, 45, record.LunchMinutes, "existing lunch wins over the default")
	assert.Equal(t, "half day", *record.Note)
	assert.Equal(t, attendance.ModeVacation, record.Mode, "mode is preserved on update")
}

func TestApplyCorrectionLunchOverride(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := &Service{AttendanceRepository: repo, defaultLunchMinutes: 60}

	date := time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC)
	err := svc.applyCorrection(context.Background(), correction.CorrectionRequest{
		EmployeeID:      7,
		Date:            date,
		NewInTime:       strPtr("09:00"),
		NewOutTime:      strPtr("17:00"),
		NewLunchMinutes: intPtr(30),
	})
	require.NoError(t, err)
	assert.Equal(t, 30, repo.upserted[0].LunchMinutes)
}

func TestStageHelpers(t *testing.T) {
	assert.Equal(t, approval.StageApproved, stageStatusFor(true))
	assert.Equal(t, approval.StageRejected, stageStatusFor(false))

	assert.Equal(t, "manager_approve", auditAction(approval.StageManager, true))
	assert.Equal(t, "hr_reject", auditAction(approval.StageHR, false))

	stages := approval.Stages{ManagerStatus: approval.StagePending, HRStatus: approval.StagePending}
	stages = applyStage(stages, approval.StageManager, approval.StageApproved)
	assert.Equal(t, approval.StageApproved, stages.ManagerStatus)
	assert.Equal(t, approval.StagePending, stages.HRStatus)

	stages = applyStage(stages, approval.StageHR, approval.StageRejected)
	assert.Equal(t, approval.StageRejected, stages.HRStatus)
	assert.Equal(t, approval.StageApproved, stages.ManagerStatus)
}

func TestGuardRejectsWrongStage(t *testing.T) {
	svc := &Service{}

	manager := user.Actor{UserID: 1, Role: user.RoleManager}
	hr := user.Actor{UserID: 2, Role: user.RoleHR}
	admin := user.Actor{UserID: 3, Role: user.RoleAdmin}
	regular := user.Actor{UserID: 4, Role: user.RoleUser}

	assert.NoError(t, svc.guard(manager, approval.StageManager))
	assert.ErrorIs(t, svc.guard(manager, approval.StageHR), approval.ErrStageNotPermitted)
	assert.NoError(t, svc.guard(hr, approval.StageHR))
	assert.ErrorIs(t, svc.guard(hr, approval.StageManager), approval.ErrStageNotPermitted)
	assert.NoError(t, svc.guard(admin, approval.StageManager))
	assert.NoError(t, svc.guard(admin, approval.StageHR))
	assert.ErrorIs(t, svc.guard(regular, approval.StageManager), approval.ErrStageNotPermitted)
	assert.ErrorIs(t, svc.guard(admin, approval.Stage("ceo")), approval.ErrInvalidStage)
}

func annualRequest(requests *fakeLeaveRequestRepo, employeeID int64, days int) leave.LeaveRequest {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	created, _ := requests.Create(context.Background(), leave.LeaveRequest{
		EmployeeID:    employeeID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, days-1),
		Type:          leave.TypeAnnual,
		ManagerStatus: approval.StageApproved,
		HRStatus:      approval.StagePending,
		Status:        approval.StatusPending,
	})
	return created
}

func TestDecideLeaveDebitsOnFinalApproval(t *testing.T) {
	requests := newFakeLeaveRequestRepo()
	balances := newFakeLeaveBalanceRepo()
	auditRepo := &fakeAuditRepo{}
	svc := &Service{
		LeaveRequestRepository: requests,
		LeaveBalanceRepository: balances,
		AuditRepository:        auditRepo,
	}

	created := annualRequest(requests, 7, 2)
	hr := user.Actor{UserID: 2, Role: user.RoleHR}

	var outcome approval.Outcome
	err := svc.decideLeave(context.Background(), hr, created.ID, approval.StageHR, true, &outcome)
	require.NoError(t, err)

	assert.Equal(t, approval.StatusApproved, outcome.Status)
	assert.False(t, outcome.RolledBack)

	stored, err := requests.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, approval.StageApproved, stored.HRStatus)
	assert.Equal(t, approval.StatusApproved, stored.Status)

	balance, err := balances.GetByEmployee(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2.0, balance.AnnualUsed)

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, "hr_approve", auditRepo.entries[0].Action)
	assert.Equal(t, "leave_request", auditRepo.entries[0].TargetType)
}

func TestDecideLeaveRollsBackOverdraw(t *testing.T) {
	requests := newFakeLeaveRequestRepo()
	balances := newFakeLeaveBalanceRepo()
	auditRepo := &fakeAuditRepo{}
	svc := &Service{
		LeaveRequestRepository: requests,
		LeaveBalanceRepository: balances,
		AuditRepository:        auditRepo,
	}

	balances.balances[7] = leave.LeaveBalance{EmployeeID: 7, AnnualTotal: 15.0, AnnualUsed: 14.0}
	created := annualRequest(requests, 7, 2)
	hr := user.Actor{UserID: 2, Role: user.RoleHR}

	var outcome approval.Outcome
	err := svc.decideLeave(context.Background(), hr, created.ID, approval.StageHR, true, &outcome)
	require.NoError(t, err)

	assert.Equal(t, approval.StatusPending, outcome.Status)
	assert.True(t, outcome.RolledBack)

	stored, err := requests.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, approval.StagePending, stored.HRStatus, "the deciding stage is reset")
	assert.Equal(t, approval.StatusPending, stored.Status)
	require.Len(t, requests.resets, 1)
	assert.Equal(t, approval.StageHR, requests.resets[0])

	balance, err := balances.GetByEmployee(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 14.0, balance.AnnualUsed, "an overdraw leaves the ledger untouched")

	require.Len(t, auditRepo.entries, 1, "the decision is audited even when rolled back")
}

func TestDecideLeaveNeverOverdraws(t *testing.T) {
	requests := newFakeLeaveRequestRepo()
	balances := newFakeLeaveBalanceRepo()
	svc := &Service{
		LeaveRequestRepository: requests,
		LeaveBalanceRepository: balances,
		AuditRepository:        &fakeAuditRepo{},
	}

	hr := user.Actor{UserID: 2, Role: user.RoleHR}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		days := rng.Intn(6) + 1
		created := annualRequest(requests, 7, days)

		before, err := balances.GetOrCreate(context.Background(), 7)
		require.NoError(t, err)
		fits := before.AnnualUsed+float64(days) <= before.AnnualTotal

		var outcome approval.Outcome
		err = svc.decideLeave(context.Background(), hr, created.ID, approval.StageHR, true, &outcome)
		require.NoError(t, err)

		balance, err := balances.GetByEmployee(context.Background(), 7)
		require.NoError(t, err)
		assert.LessOrEqual(t, balance.AnnualUsed, balance.AnnualTotal)

		if fits {
			assert.False(t, outcome.RolledBack)
			assert.Equal(t, approval.StatusApproved, outcome.Status)
			assert.Equal(t, before.AnnualUsed+float64(days), balance.AnnualUsed)
		} else {
			assert.True(t, outcome.RolledBack)
			assert.Equal(t, approval.StatusPending, outcome.Status)
			assert.Equal(t, before.AnnualUsed, balance.AnnualUsed)
		}
	}
}

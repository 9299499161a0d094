package report

import (
	"context"
	"testing"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/holiday"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	record.ID = int64(len(f.records) + 1)
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) GetRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Record, error) {
	results := make([]attendance.Record, 0)
	for _, record := range f.records {
		if record.EmployeeID == employeeID && !record.Date.Before(start) && !record.Date.After(end) {
			results = append(results, record)
		}
	}
	return results, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, record attendance.Record) error {
	return nil
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	return f.Create(ctx, record)
}

type fakeHolidayRepo struct {
	dates map[string]bool
}

func (f *fakeHolidayRepo) Add(ctx context.Context, h holiday.Holiday) error {
	f.dates[h.Date.Format("2006-01-02")] = true
	return nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, date time.Time) error {
	delete(f.dates, date.Format("2006-01-02"))
	return nil
}

func (f *fakeHolidayRepo) List(ctx context.Context) ([]holiday.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return f.dates[date.Format("2006-01-02")], nil
}

func (f *fakeHolidayRepo) DatesBetween(ctx context.Context, start, end time.Time) (map[string]bool, error) {
	return f.dates, nil
}

type fakeGoalRepo struct {
	averages []performance.EmployeeAverage
	goals    []performance.Goal
}

func (f *fakeGoalRepo) Create(ctx context.Context, goal performance.Goal) (performance.Goal, error) {
	goal.ID = int64(len(f.goals) + 1)
	f.goals = append(f.goals, goal)
	return goal, nil
}

func (f *fakeGoalRepo) GetByID(ctx context.Context, id int64) (performance.Goal, error) {
	for _, goal := range f.goals {
		if goal.ID == id {
			return goal, nil
		}
	}
	return performance.Goal{}, performance.ErrGoalNotFound
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
	return nil
}

func (f *fakeGoalRepo) SetStatus(ctx context.Context, id int64, status approval.Status) error {
	return nil
}

func (f *fakeGoalRepo) SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error {
	return nil
}

func (f *fakeGoalRepo) ProgressAverages(ctx context.Context, quarter *string) ([]performance.EmployeeAverage, error) {
	return f.averages, nil
}

func (f *fakeGoalRepo) CountAwaitingAction(ctx context.Context) (int64, error) {
	var count int64
	for _, goal := range f.goals {
		if goal.Status == approval.StatusSubmitted ||
			goal.ManagerStatus == approval.StagePending ||
			goal.HRStatus == approval.StagePending {
			count++
		}
	}
	return count, nil
}

type fakeReviewRepo struct {
	averages []performance.EmployeeAverage
}

func (f *fakeReviewRepo) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	return review, nil
}

func (f *fakeReviewRepo) List(ctx context.Context, vis user.Visibility, period *string) ([]performance.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) ScoreAverages(ctx context.Context, period *string) ([]performance.EmployeeAverage, error) {
	return f.averages, nil
}

func strPtr(s string) *string { return &s }

func TestWeeklySummaryAggregatesBuckets(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	holRepo := &fakeHolidayRepo{dates: map[string]bool{"2025-09-06": true}}

	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := attRepo.Create(context.Background(), attendance.Record{
			EmployeeID:   3,
			Date:         monday.AddDate(0, 0, i),
			InTime:       strPtr("09:00"),
			OutTime:      strPtr("18:00"),
			LunchMinutes: 60,
			Mode:         attendance.ModeOffice,
		})
		require.NoError(t, err)
	}
	// Saturday work on a declared holiday.
	_, err := attRepo.Create(context.Background(), attendance.Record{
		EmployeeID:   3,
		Date:         monday.AddDate(0, 0, 5),
		InTime:       strPtr("10:00"),
		OutTime:      strPtr("14:00"),
		LunchMinutes: 0,
		Mode:         attendance.ModeOffice,
	})
	require.NoError(t, err)

	svc := NewService(nil, nil, attRepo, holRepo, nil, nil, 3120)
	summary, err := svc.WeeklySummary(context.Background(), 3, monday.AddDate(0, 0, 2))
	require.NoError(t, err)

	assert.Equal(t, "2025-09-01", summary.WeekStart)
	assert.Equal(t, "2025-09-07", summary.WeekEnd)
	assert.Len(t, summary.Days, 7)

	// Five 480-minute office days plus 240 holiday minutes.
	assert.Equal(t, 5*480, summary.Totals.Regular)
	assert.Equal(t, 0, summary.Totals.Overtime)
	assert.Equal(t, 240, summary.Totals.Holiday)
	assert.Equal(t, 5*480+240, summary.Totals.Total)
	assert.False(t, summary.OverCap)
	assert.Equal(t, "44h 0m", summary.TotalFormatted)

	// Sunday has no record and zero buckets.
	sunday := summary.Days[6]
	assert.Nil(t, sunday.InTime)
	assert.Zero(t, sunday.Buckets.Total)
}

func TestWeeklySummaryFlagsOverCap(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	holRepo := &fakeHolidayRepo{dates: map[string]bool{}}

	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		_, err := attRepo.Create(context.Background(), attendance.Record{
			EmployeeID:   3,
			Date:         monday.AddDate(0, 0, i),
			InTime:       strPtr("08:00"),
			OutTime:      strPtr("20:00"),
			LunchMinutes: 60,
			Mode:         attendance.ModeOffice,
		})
		require.NoError(t, err)
	}

	svc := NewService(nil, nil, attRepo, holRepo, nil, nil, 3120)
	summary, err := svc.WeeklySummary(context.Background(), 3, monday)
	require.NoError(t, err)

	assert.Equal(t, 7*660, summary.Totals.Total)
	assert.True(t, summary.OverCap)
}

func TestDashboardStandings(t *testing.T) {
	goalRepo := &fakeGoalRepo{
		averages: []performance.EmployeeAverage{
			{EmployeeID: 1, Average: 80, Count: 2},
			{EmployeeID: 2, Average: 95, Count: 3},
			{EmployeeID: 3, Average: 95, Count: 1},
			{EmployeeID: 4, Average: 40, Count: 2},
		},
		goals: []performance.Goal{
			// Draft, both stages untouched: still awaiting action.
			{ID: 1, EmployeeID: 1, Status: approval.StatusDraft, ManagerStatus: approval.StagePending, HRStatus: approval.StagePending},
			// Submitted, manager cleared, hr outstanding.
			{ID: 2, EmployeeID: 2, Status: approval.StatusSubmitted, ManagerStatus: approval.StageApproved, HRStatus: approval.StagePending},
			// Rejected by the manager but the hr stage never ran.
			{ID: 3, EmployeeID: 3, Status: approval.StatusRejected, ManagerStatus: approval.StageRejected, HRStatus: approval.StagePending},
			// Fully decided, nothing left to do.
			{ID: 4, EmployeeID: 4, Status: approval.StatusApproved, ManagerStatus: approval.StageApproved, HRStatus: approval.StageApproved},
		},
	}
	reviewRepo := &fakeReviewRepo{
		averages: []performance.EmployeeAverage{{EmployeeID: 2, Average: 4.5, Count: 6}},
	}

	svc := NewService(nil, nil, nil, nil, goalRepo, reviewRepo, 3120)
	dashboard, err := svc.Dashboard(context.Background(), "2025Q3", "2025Q3")
	require.NoError(t, err)

	require.NotNil(t, dashboard.TopPerformer)
	assert.Equal(t, int64(2), dashboard.TopPerformer.EmployeeID, "first-seen employee wins the tie")
	require.NotNil(t, dashboard.BottomPerformer)
	assert.Equal(t, int64(4), dashboard.BottomPerformer.EmployeeID)
	assert.Equal(t, int64(3), dashboard.PendingGoals, "drafts and half-decided goals count, settled ones do not")
	assert.Len(t, dashboard.ReviewAverages, 1)
}

func TestDashboardEmptyAverages(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, &fakeGoalRepo{}, &fakeReviewRepo{}, 3120)
	dashboard, err := svc.Dashboard(context.Background(), "2025Q3", "2025Q3")
	require.NoError(t, err)

	assert.Nil(t, dashboard.TopPerformer)
	assert.Nil(t, dashboard.BottomPerformer)
}

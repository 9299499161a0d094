package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
	nextID  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeAttendanceRepo) key(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d#%s", employeeID, date.Format("2006-01-02"))
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	f.nextID++
	record.ID = f.nextID
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
		if record.EmployeeID == employeeID && !record.Date.Before(start) && !record.Date.After(end) {
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
	return f.Create(ctx, record)
}

type fakeHolidayRepo struct {
	dates map[string]bool
}

func (f *fakeHolidayRepo) Add(ctx context.Context, h holiday.Holiday) error { return nil }

func (f *fakeHolidayRepo) Delete(ctx context.Context, date time.Time) error { return nil }

func (f *fakeHolidayRepo) List(ctx context.Context) ([]holiday.Holiday, error) { return nil, nil }

func (f *fakeHolidayRepo) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return f.dates[date.Format("2006-01-02")], nil
}

func (f *fakeHolidayRepo) DatesBetween(ctx context.Context, start, end time.Time) (map[string]bool, error) {
	return f.dates, nil
}

func newTestService(repo *fakeAttendanceRepo) *Service {
	return NewService(nil, repo, &fakeHolidayRepo{dates: map[string]bool{}}, 60)
}

func TestClockInCreatesRecordWithDefaultLunch(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	record, err := svc.ClockIn(context.Background(), 5, attendance.ClockInRequest{
		Date:   "2025-09-01",
		InTime: "08:46",
	})
	require.NoError(t, err)

	assert.Equal(t, "08:46", *record.InTime)
	assert.Nil(t, record.OutTime)
	assert.Equal(t, 60, record.LunchMinutes)
	assert.Equal(t, attendance.ModeOffice, record.Mode)
}

func TestClockInTwiceFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	_, err := svc.ClockIn(context.Background(), 5, attendance.ClockInRequest{Date: "2025-09-01", InTime: "08:46"})
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), 5, attendance.ClockInRequest{Date: "2025-09-01", InTime: "09:00"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOutRequiresClockIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	_, err := svc.ClockOut(context.Background(), 5, attendance.ClockOutRequest{Date: "2025-09-01", OutTime: "17:00"})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOutSetsTimeAndLunchOverride(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	_, err := svc.ClockIn(context.Background(), 5, attendance.ClockInRequest{Date: "2025-09-01", InTime: "08:46"})
	require.NoError(t, err)

	lunch := 30
	record, err := svc.ClockOut(context.Background(), 5, attendance.ClockOutRequest{
		Date:         "2025-09-01",
		OutTime:      "16:46",
		LunchMinutes: &lunch,
	})
	require.NoError(t, err)
	assert.Equal(t, "16:46", *record.OutTime)
	assert.Equal(t, 30, record.LunchMinutes)

	_, err = svc.ClockOut(context.Background(), 5, attendance.ClockOutRequest{Date: "2025-09-01", OutTime: "18:00"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestDayComputesBuckets(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	_, err := svc.ClockIn(context.Background(), 5, attendance.ClockInRequest{Date: "2025-09-01", InTime: "08:00"})
	require.NoError(t, err)
	_, err = svc.ClockOut(context.Background(), 5, attendance.ClockOutRequest{Date: "2025-09-01", OutTime: "20:00"})
	require.NoError(t, err)

	day, err := svc.Day(context.Background(), 5, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 660, day.Buckets.Total)
	assert.Equal(t, 480, day.Buckets.Regular)
	assert.Equal(t, 180, day.Buckets.Overtime)
}

func TestDayMissingRecord(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	_, err := svc.Day(context.Background(), 5, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

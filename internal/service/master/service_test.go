package master

import (
	"context"
	"testing"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Add(ctx context.Context, h holiday.Holiday) error {
	f.holidays = append(f.holidays, h)
	return nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, date time.Time) error {
	return nil
}

func (f *fakeHolidayRepo) List(ctx context.Context) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeHolidayRepo) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return false, nil
}

func (f *fakeHolidayRepo) DatesBetween(ctx context.Context, start, end time.Time) (map[string]bool, error) {
	return nil, nil
}

func TestAddHolidayParsesDate(t *testing.T) {
	repo := &fakeHolidayRepo{}
	svc := &Service{HolidayRepository: repo}

	err := svc.AddHoliday(context.Background(), holiday.AddHolidayRequest{
		Date: "2025-12-25",
		Name: "Christmas Day",
	})
	require.NoError(t, err)

	require.Len(t, repo.holidays, 1)
	assert.Equal(t, time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), repo.holidays[0].Date)
	assert.Equal(t, "Christmas Day", repo.holidays[0].Name)
}

func TestAddHolidayRejectsMalformedDate(t *testing.T) {
	repo := &fakeHolidayRepo{}
	svc := &Service{HolidayRepository: repo}

	err := svc.AddHoliday(context.Background(), holiday.AddHolidayRequest{
		Date: "25-12-2025",
		Name: "Christmas Day",
	})
	require.Error(t, err)
	assert.Empty(t, repo.holidays, "nothing is stored when the date does not parse")
}

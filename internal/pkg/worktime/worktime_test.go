package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// 2025-09-01 is a Monday.
var monday = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
var saturday = time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:46", 526, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"nope", 0, true},
		{"1230", 0, true},
	}

	for _, tt := range tests {
		got, err := ToMinutes(tt.clock)
		if tt.wantErr {
			assert.Error(t, err, tt.clock)
			continue
		}
		require.NoError(t, err, tt.clock)
		assert.Equal(t, tt.want, got, tt.clock)
	}
}

func TestCalculate_RegularDay(t *testing.T) {
	b, err := Calculate(strPtr("08:46"), strPtr("16:46"), 60, monday, false)
	require.NoError(t, err)
	assert.Equal(t, 420, b.Total)
	assert.Equal(t, 420, b.Regular)
	assert.Equal(t, 0, b.Overtime)
	assert.Equal(t, 0, b.Holiday)
	assert.Equal(t, 0, b.Night)
}

func TestCalculate_Overtime(t *testing.T) {
	b, err := Calculate(strPtr("08:00"), strPtr("20:00"), 60, monday, false)
	require.NoError(t, err)
	assert.Equal(t, 660, b.Total)
	assert.Equal(t, 480, b.Regular)
	assert.Equal(t, 180, b.Overtime)
	assert.Equal(t, 0, b.Holiday)
}

func TestCalculate_MissingClockYieldsZero(t *testing.T) {
	b, err := Calculate(nil, strPtr("18:00"), 60, monday, false)
	require.NoError(t, err)
	assert.Equal(t, Buckets{}, b)

	b, err = Calculate(strPtr("09:00"), nil, 60, monday, false)
	require.NoError(t, err)
	assert.Equal(t, Buckets{}, b)
}

func TestCalculate_HolidayForcesBuckets(t *testing.T) {
	// Declared holiday on a weekday.
	b, err := Calculate(strPtr("09:00"), strPtr("19:00"), 60, monday, true)
	require.NoError(t, err)
	assert.Equal(t, 540, b.Total)
	assert.Equal(t, 540, b.Holiday)
	assert.Equal(t, 0, b.Regular)
	assert.Equal(t, 0, b.Overtime)

	// Weekend behaves the same without the flag.
	b, err = Calculate(strPtr("09:00"), strPtr("19:00"), 60, saturday, false)
	require.NoError(t, err)
	assert.Equal(t, 540, b.Holiday)
	assert.Equal(t, 0, b.Regular)
	assert.Equal(t, 0, b.Overtime)
}

func TestCalculate_OvernightShift(t *testing.T) {
	b, err := Calculate(strPtr("22:00"), strPtr("06:00"), 0, monday, false)
	require.NoError(t, err)
	assert.Equal(t, 480, b.Total)
	// Whole shift sits inside the night window.
	assert.Equal(t, 480, b.Night)
	assert.Equal(t, 480, b.Regular)
	assert.Equal(t, 0, b.Overtime)
}

func TestCalculate_NightOverlapsOtherBuckets(t *testing.T) {
	// 18:00-23:00 weekday: one hour falls after 22:00.
	b, err := Calculate(strPtr("18:00"), strPtr("23:00"), 0, monday, false)
	require.NoError(t, err)
	assert.Equal(t, 300, b.Total)
	assert.Equal(t, 60, b.Night)
	// Night is a tag, not subtracted from regular.
	assert.Equal(t, 300, b.Regular)
}

func TestCalculate_BucketsSumOnWeekdays(t *testing.T) {
	cases := []struct {
		in, out string
		lunch   int
	}{
		{"09:00", "18:00", 60},
		{"08:00", "22:30", 60},
		{"07:15", "16:00", 45},
		{"21:00", "05:00", 0},
	}
	for _, c := range cases {
		b, err := Calculate(strPtr(c.in), strPtr(c.out), c.lunch, monday, false)
		require.NoError(t, err)
		inM, _ := ToMinutes(c.in)
		outM, _ := ToMinutes(c.out)
		if outM < inM {
			outM += 24 * 60
		}
		assert.Equal(t, outM-inM-c.lunch, b.Total, "%s-%s", c.in, c.out)
		assert.Equal(t, b.Total, b.Regular+b.Overtime, "%s-%s", c.in, c.out)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	a, err := Calculate(strPtr("20:00"), strPtr("04:00"), 30, monday, false)
	require.NoError(t, err)
	b, err := Calculate(strPtr("20:00"), strPtr("04:00"), 30, monday, false)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWeekRange(t *testing.T) {
	// Wednesday 2025-09-03.
	start, end := WeekRange(time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, monday, start)
	assert.Equal(t, time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC), end)

	// Sunday maps back to the Monday of the same ISO week.
	start, end = WeekRange(time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, monday, start)
	assert.Equal(t, time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC), end)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "7h 0m", FormatMinutes(420))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "0m", FormatMinutes(0))
}

package holiday

import (
	"context"
	"errors"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
)

// Holiday marks a calendar date whose worked minutes land entirely in
// the holiday bucket, same as weekends.
type Holiday struct {
	ID   int64
	Date time.Time
	Name string
}

var (
	ErrHolidayNotFound = errors.New("holiday not found")
)

type HolidayRepository interface {
	// Add is idempotent on date; re-adding an existing date is a no-op.
	Add(ctx context.Context, h Holiday) error
	Delete(ctx context.Context, date time.Time) error
	List(ctx context.Context) ([]Holiday, error)
	// IsHoliday checks whether date is a declared holiday.
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
	// DatesBetween returns the declared holiday dates in [start, end].
	DatesBetween(ctx context.Context, start, end time.Time) (map[string]bool, error)
}

type AddHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *AddHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

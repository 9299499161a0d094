package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// (employee_id, date) is the natural key; Upsert writes through it so a
// correction approval can create or overwrite a day in one statement.
type AttendanceRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Record, error)
	GetRange(ctx context.Context, employeeID int64, start, end time.Time) ([]Record, error)
	Update(ctx context.Context, record Record) error
	Upsert(ctx context.Context, record Record) (Record, error)
}

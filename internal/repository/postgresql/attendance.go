package postgresql

import (
	"context"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, in_time, out_time, lunch_minutes, mode, note,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.InTime, record.OutTime,
		record.LunchMinutes, record.Mode, record.Note,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return attendance.Record{}, err
	}
	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, in_time, out_time, lunch_minutes, mode, note,
			   created_at, updated_at
		FROM attendance_records
		WHERE id = $1
	`

	var record attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.InTime, &record.OutTime,
		&record.LunchMinutes, &record.Mode, &record.Note,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository. A nil
// record with nil error means no row exists for that day.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, in_time, out_time, lunch_minutes, mode, note,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`

	var record attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.InTime, &record.OutTime,
		&record.LunchMinutes, &record.Mode, &record.Note,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// GetRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.in_time, ar.out_time,
			   ar.lunch_minutes, ar.mode, ar.note, ar.created_at, ar.updated_at,
			   e.name AS employee_name
		FROM attendance_records ar
		JOIN employees e ON ar.employee_id = e.id
		WHERE ar.employee_id = $1 AND ar.date BETWEEN $2 AND $3
		ORDER BY ar.date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var record attendance.Record
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.InTime, &record.OutTime,
			&record.LunchMinutes, &record.Mode, &record.Note, &record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET in_time = $1, out_time = $2, lunch_minutes = $3, mode = $4, note = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	result, err := q.Exec(ctx, query,
		record.InTime, record.OutTime, record.LunchMinutes, record.Mode, record.Note,
		record.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// Upsert implements attendance.AttendanceRepository. Writes through the
// (employee_id, date) natural key so correction approvals create or
// replace the day in one statement.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, in_time, out_time, lunch_minutes, mode, note,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE
		SET in_time = EXCLUDED.in_time,
			out_time = EXCLUDED.out_time,
			lunch_minutes = EXCLUDED.lunch_minutes,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.InTime, record.OutTime,
		record.LunchMinutes, record.Mode, record.Note,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return attendance.Record{}, err
	}
	return record, nil
}

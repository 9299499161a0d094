package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/overtime"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (
			employee_id, date, start_time, end_time, minutes, reason,
			manager_status, hr_status, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, 'pending', 'pending', 'pending', NOW(), NOW())
		RETURNING id, manager_status, hr_status, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Date, request.StartTime, request.EndTime,
		request.Minutes, request.Reason,
	).Scan(
		&request.ID, &request.ManagerStatus, &request.HRStatus, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		return overtime.OvertimeRequest{}, err
	}
	return request, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id int64) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_time, end_time, minutes, reason,
			   manager_status, hr_status, status, created_at, updated_at
		FROM overtime_requests
		WHERE id = $1
	`

	var request overtime.OvertimeRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.Date, &request.StartTime, &request.EndTime,
		&request.Minutes, &request.Reason,
		&request.ManagerStatus, &request.HRStatus, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeRequest{}, err
	}
	return request, nil
}

// GetVisible implements overtime.OvertimeRepository. The visibility
// scope applies exactly as in List.
func (r *overtimeRepositoryImpl) GetVisible(ctx context.Context, id int64, vis user.Visibility) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ot.id, ot.employee_id, ot.date, ot.start_time, ot.end_time, ot.minutes, ot.reason,
			   ot.manager_status, ot.hr_status, ot.status, ot.created_at, ot.updated_at,
			   e.name AS employee_name
		FROM overtime_requests ot
		JOIN employees e ON ot.employee_id = e.id
		WHERE ot.id = $1
	`

	clauses, args := visibilityClause(vis, "ot", "e", []interface{}{id})
	if len(clauses) > 0 {
		query += " AND " + strings.Join(clauses, " AND ")
	}

	var request overtime.OvertimeRequest
	err := q.QueryRow(ctx, query, args...).Scan(
		&request.ID, &request.EmployeeID, &request.Date, &request.StartTime, &request.EndTime,
		&request.Minutes, &request.Reason,
		&request.ManagerStatus, &request.HRStatus, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
		&request.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeRequest{}, err
	}
	return request, nil
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) List(ctx context.Context, vis user.Visibility) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ot.id, ot.employee_id, ot.date, ot.start_time, ot.end_time, ot.minutes, ot.reason,
			   ot.manager_status, ot.hr_status, ot.status, ot.created_at, ot.updated_at,
			   e.name AS employee_name
		FROM overtime_requests ot
		JOIN employees e ON ot.employee_id = e.id
	`

	clauses, args := visibilityClause(vis, "ot", "e", nil)
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY ot.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]overtime.OvertimeRequest, 0)
	for rows.Next() {
		var request overtime.OvertimeRequest
		if err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.Date, &request.StartTime, &request.EndTime,
			&request.Minutes, &request.Reason,
			&request.ManagerStatus, &request.HRStatus, &request.Status,
			&request.CreatedAt, &request.UpdatedAt,
			&request.EmployeeName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// SetStage implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE overtime_requests
		SET %s_status = $1, updated_at = NOW()
		WHERE id = $2
	`, stage)

	result, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}
	return nil
}

// SetStatus implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) SetStatus(ctx context.Context, id int64, status approval.Status) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx,
		`UPDATE overtime_requests SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}
	return nil
}

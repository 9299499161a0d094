package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/leave"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, start_date, end_date, type, reason,
			manager_status, hr_status, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, 'pending', 'pending', 'pending', NOW(), NOW())
		RETURNING id, manager_status, hr_status, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.StartDate, request.EndDate, request.Type, request.Reason,
	).Scan(
		&request.ID, &request.ManagerStatus, &request.HRStatus, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, type, reason,
			   manager_status, hr_status, status, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.StartDate, &request.EndDate,
		&request.Type, &request.Reason,
		&request.ManagerStatus, &request.HRStatus, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// GetVisible implements leave.LeaveRequestRepository. The visibility
// scope applies exactly as in List, so an out-of-scope record is
// indistinguishable from a missing one.
func (r *leaveRequestRepositoryImpl) GetVisible(ctx context.Context, id int64, vis user.Visibility) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.type, lr.reason,
			   lr.manager_status, lr.hr_status, lr.status, lr.created_at, lr.updated_at,
			   e.name AS employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	clauses, args := visibilityClause(vis, "lr", "e", []interface{}{id})
	if len(clauses) > 0 {
		query += " AND " + strings.Join(clauses, " AND ")
	}

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, args...).Scan(
		&request.ID, &request.EmployeeID, &request.StartDate, &request.EndDate,
		&request.Type, &request.Reason,
		&request.ManagerStatus, &request.HRStatus, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
		&request.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, vis user.Visibility) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.type, lr.reason,
			   lr.manager_status, lr.hr_status, lr.status, lr.created_at, lr.updated_at,
			   e.name AS employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
	`

	clauses, args := visibilityClause(vis, "lr", "e", nil)
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY lr.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var request leave.LeaveRequest
		if err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.StartDate, &request.EndDate,
			&request.Type, &request.Reason,
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

// SetStage implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE leave_requests
		SET %s_status = $1, updated_at = NOW()
		WHERE id = $2
	`, stage)

	result, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// SetStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) SetStatus(ctx context.Context, id int64, status approval.Status) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx,
		`UPDATE leave_requests SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// ResetToPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ResetToPending(ctx context.Context, id int64, stage approval.Stage) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE leave_requests
		SET %s_status = 'pending', status = 'pending', updated_at = NOW()
		WHERE id = $1
	`, stage)

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/correction"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type correctionRepositoryImpl struct {
	db *database.DB
}

func NewCorrectionRepository(db *database.DB) correction.CorrectionRepository {
	return &correctionRepositoryImpl{db: db}
}

// Create implements correction.CorrectionRepository.
func (r *correctionRepositoryImpl) Create(ctx context.Context, request correction.CorrectionRequest) (correction.CorrectionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO correction_requests (
			employee_id, date, new_in_time, new_out_time, new_lunch_minutes, reason,
			manager_status, hr_status, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, 'pending', 'pending', 'pending', NOW(), NOW())
		RETURNING id, manager_status, hr_status, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Date, request.NewInTime, request.NewOutTime,
		request.NewLunchMinutes, request.Reason,
	).Scan(
		&request.ID, &request.ManagerStatus, &request.HRStatus, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		return correction.CorrectionRequest{}, err
	}
	return request, nil
}

// GetByID implements correction.CorrectionRepository.
func (r *correctionRepositoryImpl) GetByID(ctx context.Context, id int64) (correction.CorrectionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, new_in_time, new_out_time, new_lunch_minutes, reason,
			   manager_status, hr_status, status, created_at, updated_at
		FROM correction_requests
		WHERE id = $1
	`

	var request correction.CorrectionRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.Date,
		&request.NewInTime, &request.NewOutTime, &request.NewLunchMinutes, &request.Reason,
		&request.ManagerStatus, &request.HRStatus, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return correction.CorrectionRequest{}, correction.ErrCorrectionNotFound
		}
		return correction.CorrectionRequest{}, err
	}
	return request, nil
}

// GetVisible implements correction.CorrectionRepository. The
// visibility scope applies exactly as in List.
func (r *correctionRepositoryImpl) GetVisible(ctx context.Context, id int64, vis user.Visibility) (correction.CorrectionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT cr.id, cr.employee_id, cr.date,
			   cr.new_in_time, cr.new_out_time, cr.new_lunch_minutes, cr.reason,
			   cr.manager_status, cr.hr_status, cr.status, cr.created_at, cr.updated_at,
			   e.name AS employee_name
		FROM correction_requests cr
		JOIN employees e ON cr.employee_id = e.id
		WHERE cr.id = $1
	`

	clauses, args := visibilityClause(vis, "cr", "e", []interface{}{id})
	if len(clauses) > 0 {
		query += " AND " + strings.Join(clauses, " AND ")
	}

	var request correction.CorrectionRequest
	err := q.QueryRow(ctx, query, args...).Scan(
		&request.ID, &request.EmployeeID, &request.Date,
		&request.NewInTime, &request.NewOutTime, &request.NewLunchMinutes, &request.Reason,
		&request.ManagerStatus, &request.HRStatus, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
		&request.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return correction.CorrectionRequest{}, correction.ErrCorrectionNotFound
		}
		return correction.CorrectionRequest{}, err
	}
	return request, nil
}

// List implements correction.CorrectionRepository.
func (r *correctionRepositoryImpl) List(ctx context.Context, vis user.Visibility) ([]correction.CorrectionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT cr.id, cr.employee_id, cr.date,
			   cr.new_in_time, cr.new_out_time, cr.new_lunch_minutes, cr.reason,
			   cr.manager_status, cr.hr_status, cr.status, cr.created_at, cr.updated_at,
			   e.name AS employee_name
		FROM correction_requests cr
		JOIN employees e ON cr.employee_id = e.id
	`

	clauses, args := visibilityClause(vis, "cr", "e", nil)
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY cr.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]correction.CorrectionRequest, 0)
	for rows.Next() {
		var request correction.CorrectionRequest
		if err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.Date,
			&request.NewInTime, &request.NewOutTime, &request.NewLunchMinutes, &request.Reason,
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

// SetStage implements correction.CorrectionRepository.
func (r *correctionRepositoryImpl) SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE correction_requests
		SET %s_status = $1, updated_at = NOW()
		WHERE id = $2
	`, stage)

	result, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return correction.ErrCorrectionNotFound
	}
	return nil
}

// SetStatus implements correction.CorrectionRepository.
func (r *correctionRepositoryImpl) SetStatus(ctx context.Context, id int64, status approval.Status) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx,
		`UPDATE correction_requests SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return correction.ErrCorrectionNotFound
	}
	return nil
}

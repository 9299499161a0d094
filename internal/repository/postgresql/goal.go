package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type goalRepositoryImpl struct {
	db *database.DB
}

func NewGoalRepository(db *database.DB) performance.GoalRepository {
	return &goalRepositoryImpl{db: db}
}

// Create implements performance.GoalRepository. New goals start as
// drafts with both stages pending.
func (r *goalRepositoryImpl) Create(ctx context.Context, goal performance.Goal) (performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO goals (
			employee_id, quarter, title, description, weight, progress,
			manager_status, hr_status, status, updated_at
		) VALUES ($1, $2, $3, $4, $5, 0, 'pending', 'pending', 'draft', NOW())
		RETURNING id, progress, manager_status, hr_status, status, updated_at
	`

	err := q.QueryRow(ctx, query,
		goal.EmployeeID, goal.Quarter, goal.Title, goal.Description, goal.Weight,
	).Scan(
		&goal.ID, &goal.Progress, &goal.ManagerStatus, &goal.HRStatus, &goal.Status,
		&goal.UpdatedAt,
	)
	if err != nil {
		return performance.Goal{}, err
	}
	return goal, nil
}

// GetByID implements performance.GoalRepository.
func (r *goalRepositoryImpl) GetByID(ctx context.Context, id int64) (performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, quarter, title, description, weight, progress,
			   manager_status, hr_status, status, updated_at
		FROM goals
		WHERE id = $1
	`

	var goal performance.Goal
	err := q.QueryRow(ctx, query, id).Scan(
		&goal.ID, &goal.EmployeeID, &goal.Quarter, &goal.Title, &goal.Description,
		&goal.Weight, &goal.Progress,
		&goal.ManagerStatus, &goal.HRStatus, &goal.Status,
		&goal.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Goal{}, performance.ErrGoalNotFound
		}
		return performance.Goal{}, err
	}
	return goal, nil
}

// GetVisible implements performance.GoalRepository. The visibility
// scope applies exactly as in List.
func (r *goalRepositoryImpl) GetVisible(ctx context.Context, id int64, vis user.Visibility) (performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.employee_id, g.quarter, g.title, g.description, g.weight, g.progress,
			   g.manager_status, g.hr_status, g.status, g.updated_at,
			   e.name AS employee_name
		FROM goals g
		JOIN employees e ON g.employee_id = e.id
		WHERE g.id = $1
	`

	clauses, args := visibilityClause(vis, "g", "e", []interface{}{id})
	if len(clauses) > 0 {
		query += " AND " + strings.Join(clauses, " AND ")
	}

	var goal performance.Goal
	err := q.QueryRow(ctx, query, args...).Scan(
		&goal.ID, &goal.EmployeeID, &goal.Quarter, &goal.Title, &goal.Description,
		&goal.Weight, &goal.Progress,
		&goal.ManagerStatus, &goal.HRStatus, &goal.Status,
		&goal.UpdatedAt,
		&goal.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Goal{}, performance.ErrGoalNotFound
		}
		return performance.Goal{}, err
	}
	return goal, nil
}

// List implements performance.GoalRepository.
func (r *goalRepositoryImpl) List(ctx context.Context, vis user.Visibility, quarter *string) ([]performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.employee_id, g.quarter, g.title, g.description, g.weight, g.progress,
			   g.manager_status, g.hr_status, g.status, g.updated_at,
			   e.name AS employee_name
		FROM goals g
		JOIN employees e ON g.employee_id = e.id
	`

	clauses, args := visibilityClause(vis, "g", "e", nil)
	if quarter != nil {
		args = append(args, *quarter)
		clauses = append(clauses, fmt.Sprintf("g.quarter = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY g.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]performance.Goal, 0)
	for rows.Next() {
		var goal performance.Goal
		if err := rows.Scan(
			&goal.ID, &goal.EmployeeID, &goal.Quarter, &goal.Title, &goal.Description,
			&goal.Weight, &goal.Progress,
			&goal.ManagerStatus, &goal.HRStatus, &goal.Status,
			&goal.UpdatedAt,
			&goal.EmployeeName,
		); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, nil
}

// UpdateProgress implements performance.GoalRepository.
func (r *goalRepositoryImpl) UpdateProgress(ctx context.Context, id int64, progress float64) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx,
		`UPDATE goals SET progress = $1, updated_at = NOW() WHERE id = $2`,
		progress, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return performance.ErrGoalNotFound
	}
	return nil
}

// SetStatus implements performance.GoalRepository.
func (r *goalRepositoryImpl) SetStatus(ctx context.Context, id int64, status approval.Status) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx,
		`UPDATE goals SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return performance.ErrGoalNotFound
	}
	return nil
}

// SetStage implements performance.GoalRepository.
func (r *goalRepositoryImpl) SetStage(ctx context.Context, id int64, stage approval.Stage, status approval.StageStatus) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE goals
		SET %s_status = $1, updated_at = NOW()
		WHERE id = $2
	`, stage)

	result, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return performance.ErrGoalNotFound
	}
	return nil
}

// ProgressAverages implements performance.GoalRepository.
func (r *goalRepositoryImpl) ProgressAverages(ctx context.Context, quarter *string) ([]performance.EmployeeAverage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, AVG(progress), COUNT(*)
		FROM goals
	`
	args := make([]interface{}, 0, 1)
	if quarter != nil {
		args = append(args, *quarter)
		query += " WHERE quarter = $1"
	}
	query += `
		GROUP BY employee_id
		ORDER BY MIN(id)
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make([]performance.EmployeeAverage, 0)
	for rows.Next() {
		var avg performance.EmployeeAverage
		if err := rows.Scan(&avg.EmployeeID, &avg.Average, &avg.Count); err != nil {
			return nil, err
		}
		averages = append(averages, avg)
	}

	return averages, nil
}

// CountAwaitingAction implements performance.GoalRepository. A goal
// awaits action while it is submitted or while either stage is still
// undecided; that includes drafts not yet submitted.
func (r *goalRepositoryImpl) CountAwaitingAction(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM goals
		 WHERE status = 'submitted' OR manager_status = 'pending' OR hr_status = 'pending'`,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

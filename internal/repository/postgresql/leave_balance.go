package postgresql

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/leave"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB

	// Default annual entitlement for lazily created balance rows.
	annualLeaveDays float64
}

func NewLeaveBalanceRepository(db *database.DB, annualLeaveDays float64) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db, annualLeaveDays: annualLeaveDays}
}

// GetOrCreate implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetOrCreate(ctx context.Context, employeeID int64) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (employee_id, annual_total, annual_used, updated_at)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (employee_id) DO UPDATE SET employee_id = EXCLUDED.employee_id
		RETURNING id, employee_id, annual_total, annual_used, updated_at
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, r.annualLeaveDays).Scan(
		&balance.ID, &balance.EmployeeID, &balance.AnnualTotal, &balance.AnnualUsed,
		&balance.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

// Debit implements leave.LeaveBalanceRepository. The guard rides in the
// WHERE clause so concurrent approvals can never overdraw the row.
func (r *leaveBalanceRepositoryImpl) Debit(ctx context.Context, employeeID int64, days float64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET annual_used = annual_used + $1, updated_at = NOW()
		WHERE employee_id = $2
		AND annual_used + $1 <= annual_total
	`

	result, err := q.Exec(ctx, query, days, employeeID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

// SetTotal implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) SetTotal(ctx context.Context, employeeID int64, total float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (employee_id, annual_total, annual_used, updated_at)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (employee_id) DO UPDATE
		SET annual_total = EXCLUDED.annual_total, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, employeeID, total)
	return err
}

// GetByEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID int64) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, annual_total, annual_used, updated_at
		FROM leave_balances
		WHERE employee_id = $1
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&balance.ID, &balance.EmployeeID, &balance.AnnualTotal, &balance.AnnualUsed,
		&balance.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

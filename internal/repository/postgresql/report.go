package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/report"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Overview implements report.ReportRepository. Every employee appears
// exactly once; attendance columns stay NULL when no row exists for
// the base date.
func (r *reportRepositoryImpl) Overview(ctx context.Context, filter report.OverviewFilter) ([]report.OverviewRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_no, e.name, e.email, e.department_id, e.position,
			   ar.in_time, ar.out_time, ar.lunch_minutes, ar.mode, ar.note
		FROM employees e
		LEFT JOIN attendance_records ar
			ON ar.employee_id = e.id AND ar.date = $1
	`

	args := []interface{}{filter.BaseDate}
	clauses := make([]string, 0, 2)
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		clauses = append(clauses, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.Query != nil {
		args = append(args, "%"+*filter.Query+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(e.name ILIKE $%d OR e.email ILIKE $%d OR e.employee_no ILIKE $%d)", n, n, n))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY e.id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]report.OverviewRow, 0)
	for rows.Next() {
		var row report.OverviewRow
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeNo, &row.Name, &row.Email,
			&row.DepartmentID, &row.Position,
			&row.InTime, &row.OutTime, &row.LunchMinutes, &row.Mode, &row.Note,
		); err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	return results, nil
}

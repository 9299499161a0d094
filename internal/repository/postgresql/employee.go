package postgresql

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/employee"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB

	// Entitlement seeded into the balance row of a new employee.
	annualLeaveDays float64
}

func NewEmployeeRepository(db *database.DB, annualLeaveDays float64) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db, annualLeaveDays: annualLeaveDays}
}

// Create implements employee.EmployeeRepository. The leave balance row
// is seeded in the same statement batch so a fresh employee can file an
// annual leave request immediately.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (employee_no, name, email, department_id, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeNo, emp.Name, emp.Email, emp.DepartmentID, emp.Position,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	seedQuery := `
		INSERT INTO leave_balances (employee_id, annual_total, annual_used, updated_at)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (employee_id) DO NOTHING
	`
	if _, err := q.Exec(ctx, seedQuery, emp.ID, r.annualLeaveDays); err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_no, e.name, e.email, e.department_id, e.position,
			   e.created_at, e.updated_at,
			   d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeNo, &emp.Name, &emp.Email, &emp.DepartmentID, &emp.Position,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_no, e.name, e.email, e.department_id, e.position,
			   e.created_at, e.updated_at,
			   d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		ORDER BY e.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.EmployeeNo, &emp.Name, &emp.Email, &emp.DepartmentID, &emp.Position,
			&emp.CreatedAt, &emp.UpdatedAt,
			&emp.DepartmentName,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

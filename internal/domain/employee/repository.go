package employee

import "context"

type EmployeeRepository interface {
	// Create inserts the employee and seeds their leave balance row.
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
}

package employee

import "time"

type Employee struct {
	ID           int64
	EmployeeNo   string
	Name         string
	Email        string
	DepartmentID *int64
	Position     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join field
	DepartmentName *string
}

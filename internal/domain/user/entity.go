package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Full access, may act on either approval stage
	RoleHR      Role = "hr"      // HR stage approver, sees manager-cleared requests
	RoleManager Role = "manager" // Manager stage approver, scoped to own department
	RoleUser    Role = "user"    // Regular employee, sees own records only
)

// ValidRole reports whether r is one of the closed role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	EmployeeID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor is the acting identity extracted from the session token. For
// managers DepartmentID carries their own employee's department.
type Actor struct {
	UserID       int64
	Role         Role
	EmployeeID   *int64
	DepartmentID *int64
}

// IsPrivileged checks if the actor sees records beyond their own.
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleAdmin || a.Role == RoleHR || a.Role == RoleManager
}

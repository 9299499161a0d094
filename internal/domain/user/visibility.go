package user

// Visibility narrows request listings to what an actor may review.
// A zero Visibility means unrestricted (admin). Exactly one of the
// narrowing fields is set for the other roles.
type Visibility struct {
	// DepartmentID limits results to employees of one department (manager).
	DepartmentID *int64
	// ManagerApprovedOnly limits results to requests the manager stage has
	// already cleared (hr) - HR never reviews an uncleared request.
	ManagerApprovedOnly bool
	// EmployeeID limits results to the actor's own requests (user).
	EmployeeID *int64
}

// VisibilityFor maps an actor to the listing scope of the approval
// workflow. A manager without a department binding falls back to
// own-records-only rather than seeing everything.
func VisibilityFor(a Actor) Visibility {
	switch a.Role {
	case RoleAdmin:
		return Visibility{}
	case RoleHR:
		return Visibility{ManagerApprovedOnly: true}
	case RoleManager:
		if a.DepartmentID != nil {
			return Visibility{DepartmentID: a.DepartmentID}
		}
		return Visibility{EmployeeID: a.EmployeeID}
	default:
		return Visibility{EmployeeID: a.EmployeeID}
	}
}

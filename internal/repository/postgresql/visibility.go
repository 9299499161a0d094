package postgresql

import (
	"fmt"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
)

// visibilityClause renders a Visibility into WHERE fragments for the
// request listing queries. requestAlias is the request table alias and
// employeeAlias the joined employees alias. Argument placeholders start
// at len(args)+1 so callers can seed args with earlier parameters.
func visibilityClause(vis user.Visibility, requestAlias, employeeAlias string, args []interface{}) ([]string, []interface{}) {
	clauses := make([]string, 0, 2)

	if vis.EmployeeID != nil {
		args = append(args, *vis.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("%s.employee_id = $%d", requestAlias, len(args)))
	}
	if vis.DepartmentID != nil {
		args = append(args, *vis.DepartmentID)
		clauses = append(clauses, fmt.Sprintf("%s.department_id = $%d", employeeAlias, len(args)))
	}
	if vis.ManagerApprovedOnly {
		clauses = append(clauses, fmt.Sprintf("%s.manager_status = 'approved'", requestAlias))
	}

	return clauses, args
}

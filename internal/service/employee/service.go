package employee

import (
	"context"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/employee"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/hanbit-hr/worktime-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type Service struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewService(db *database.DB, employeeRepository employee.EmployeeRepository) *Service {
	return &Service{db: db, EmployeeRepository: employeeRepository}
}

// Create registers an employee. The insert and the seeded leave
// balance land in one transaction.
func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			EmployeeNo:   req.EmployeeNo,
			Name:         req.Name,
			Email:        req.Email,
			DepartmentID: req.DepartmentID,
			Position:     req.Position,
		})
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

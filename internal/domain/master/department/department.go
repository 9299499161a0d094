package department

import (
	"context"
	"errors"

	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/validator"
)

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

var (
	ErrDepartmentNotFound = errors.New("department not found")
)

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id int64) (Department, error)
	List(ctx context.Context) ([]Department, error)
}

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

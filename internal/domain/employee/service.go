package employee

import (
	"context"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}

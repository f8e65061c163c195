package employee

import (
	"context"

	"github.com/rangeops/backoffice-go/internal/domain/employee"
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	existing, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.Employee{}, err
	}
	if existing != nil {
		return employee.Employee{}, employee.ErrEmailExists
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	return s.employeeRepo.Create(ctx, employee.Employee{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		HireDate: hireDate,
		IsActive: true,
	})
}

// Get implements employee.EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx, activeOnly)
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil && *req.Email != emp.Email {
		existing, err := s.employeeRepo.GetByEmail(ctx, *req.Email)
		if err != nil {
			return employee.Employee{}, err
		}
		if existing != nil {
			return employee.Employee{}, employee.ErrEmailExists
		}
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// Delete implements employee.EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

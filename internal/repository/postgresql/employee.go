package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rangeops/backoffice-go/internal/domain/employee"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, full_name, email, phone, hire_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.UserID,
		emp.FullName,
		emp.Email,
		emp.Phone,
		emp.HireDate,
		emp.IsActive,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, full_name, email, phone, hire_date, is_active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.UserID,
		&emp.FullName,
		&emp.Email,
		&emp.Phone,
		&emp.HireDate,
		&emp.IsActive,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, full_name, email, phone, hire_date, is_active, created_at, updated_at
		FROM employees
		WHERE email = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&emp.ID,
		&emp.UserID,
		&emp.FullName,
		&emp.Email,
		&emp.Phone,
		&emp.HireDate,
		&emp.IsActive,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, full_name, email, phone, hire_date, is_active, created_at, updated_at
		FROM employees
		WHERE ($1 = false OR is_active = true)
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.UserID,
			&emp.FullName,
			&emp.Email,
			&emp.Phone,
			&emp.HireDate,
			&emp.IsActive,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, phone = $3, hire_date = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`

	result, err := q.Exec(ctx, query,
		emp.FullName,
		emp.Email,
		emp.Phone,
		emp.HireDate,
		emp.IsActive,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository. Deactivates rather
// than removes; history under the employee must stay queryable.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `UPDATE employees SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

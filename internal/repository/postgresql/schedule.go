package postgresql

import (
	"context"
	"time"

	"github.com/rangeops/backoffice-go/internal/domain/schedule"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	s.id, s.employee_id, s.date, s.hours, s.status, s.note,
	s.created_at, s.updated_at,
	e.full_name AS employee_name
`

// Create implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (employee_id, date, hours, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.EmployeeID,
		shift.Date,
		shift.Hours,
		shift.Status,
		shift.Note,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)
	if err != nil {
		return schedule.Shift{}, err
	}

	return shift, nil
}

// GetByID implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON s.employee_id = e.id
		WHERE s.id = $1
	`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return schedule.Shift{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return schedule.Shift{}, err
		}
		return schedule.Shift{}, schedule.ErrShiftNotFound
	}

	var shift schedule.Shift
	if err := scanShift(rows.Scan, &shift); err != nil {
		return schedule.Shift{}, err
	}

	return shift, nil
}

// GetByEmployeeAndDate implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON s.employee_id = e.id
		WHERE s.employee_id = $1 AND s.date = $2
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var shift schedule.Shift
	if err := scanShift(rows.Scan, &shift); err != nil {
		return nil, err
	}

	return &shift, nil
}

// ListByRange implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) ListByRange(ctx context.Context, from, to time.Time) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON s.employee_id = e.id
		WHERE s.date BETWEEN $1 AND $2
		ORDER BY s.date, e.full_name
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShifts(rows.Next, rows.Scan, rows.Err)
}

// ListByEmployeeAndRange implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON s.employee_id = e.id
		WHERE s.employee_id = $1 AND s.date BETWEEN $2 AND $3
		ORDER BY s.date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShifts(rows.Next, rows.Scan, rows.Err)
}

// Update implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, shift schedule.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET hours = $1, status = $2, note = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := q.Exec(ctx, query, shift.Hours, shift.Status, shift.Note, shift.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}

	return nil
}

// Delete implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}

	return nil
}

func scanShift(scan func(dest ...any) error, shift *schedule.Shift) error {
	return scan(
		&shift.ID,
		&shift.EmployeeID,
		&shift.Date,
		&shift.Hours,
		&shift.Status,
		&shift.Note,
		&shift.CreatedAt,
		&shift.UpdatedAt,
		&shift.EmployeeName,
	)
}

func collectShifts(next func() bool, scan func(dest ...any) error, rowsErr func() error) ([]schedule.Shift, error) {
	shifts := make([]schedule.Shift, 0)
	for next() {
		var shift schedule.Shift
		if err := scanShift(scan, &shift); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rowsErr()
}

package postgresql

import (
	"context"
	"time"

	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
)

type reconciliationRepositoryImpl struct {
	db *database.DB
}

func NewReconciliationRepository(db *database.DB) payroll.ReconciliationRepository {
	return &reconciliationRepositoryImpl{db: db}
}

// Upsert implements payroll.ReconciliationRepository. The (employee,
// date) pair is unique; a later computation supersedes the row in
// place rather than adding a second record for the day.
func (r *reconciliationRepositoryImpl) Upsert(ctx context.Context, record payroll.ReconciliationRecord) (payroll.ReconciliationRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reconciliation_records
			(employee_id, date, scheduled_hours, worked_hours, difference_hours,
			 sick_time_applied, resulting_balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE SET
			scheduled_hours = EXCLUDED.scheduled_hours,
			worked_hours = EXCLUDED.worked_hours,
			difference_hours = EXCLUDED.difference_hours,
			sick_time_applied = EXCLUDED.sick_time_applied,
			resulting_balance = EXCLUDED.resulting_balance,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, employee_id, date, scheduled_hours, worked_hours, difference_hours,
				  sick_time_applied, resulting_balance, status, created_at, updated_at
	`

	var saved payroll.ReconciliationRecord
	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.ScheduledHours,
		record.WorkedHours,
		record.DifferenceHours,
		record.SickTimeApplied,
		record.ResultingBalance,
		record.Status,
	).Scan(
		&saved.ID,
		&saved.EmployeeID,
		&saved.Date,
		&saved.ScheduledHours,
		&saved.WorkedHours,
		&saved.DifferenceHours,
		&saved.SickTimeApplied,
		&saved.ResultingBalance,
		&saved.Status,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	return saved, nil
}

// GetByEmployeeAndDate implements payroll.ReconciliationRepository.
func (r *reconciliationRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*payroll.ReconciliationRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, scheduled_hours, worked_hours, difference_hours,
			   sick_time_applied, resulting_balance, status, created_at, updated_at
		FROM reconciliation_records
		WHERE employee_id = $1 AND date = $2
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var record payroll.ReconciliationRecord
	if err := scanReconciliation(rows.Scan, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// ListByRange implements payroll.ReconciliationRepository.
func (r *reconciliationRepositoryImpl) ListByRange(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.ReconciliationRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, scheduled_hours, worked_hours, difference_hours,
			   sick_time_applied, resulting_balance, status, created_at, updated_at
		FROM reconciliation_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]payroll.ReconciliationRecord, 0)
	for rows.Next() {
		var record payroll.ReconciliationRecord
		if err := scanReconciliation(rows.Scan, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// ListAllByRange implements payroll.ReconciliationRepository.
func (r *reconciliationRepositoryImpl) ListAllByRange(ctx context.Context, from, to time.Time) ([]payroll.ReconciliationRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, scheduled_hours, worked_hours, difference_hours,
			   sick_time_applied, resulting_balance, status, created_at, updated_at
		FROM reconciliation_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY employee_id, date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]payroll.ReconciliationRecord, 0)
	for rows.Next() {
		var record payroll.ReconciliationRecord
		if err := scanReconciliation(rows.Scan, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanReconciliation(scan func(dest ...any) error, record *payroll.ReconciliationRecord) error {
	return scan(
		&record.ID,
		&record.EmployeeID,
		&record.Date,
		&record.ScheduledHours,
		&record.WorkedHours,
		&record.DifferenceHours,
		&record.SickTimeApplied,
		&record.ResultingBalance,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
}

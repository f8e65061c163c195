package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
)

type balanceRepositoryImpl struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) payroll.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

// GetByEmployeeID implements payroll.BalanceRepository.
func (r *balanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (payroll.SickTimeBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, hours, updated_at
		FROM sick_time_balances
		WHERE employee_id = $1
	`

	var balance payroll.SickTimeBalance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&balance.EmployeeID,
		&balance.Hours,
		&balance.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SickTimeBalance{}, payroll.ErrBalanceNotFound
		}
		return payroll.SickTimeBalance{}, err
	}

	return balance, nil
}

// ApplyDelta implements payroll.BalanceRepository. The WHERE guard
// makes the non-negativity check and the write one atomic statement,
// so a concurrent debit can never push the balance below zero.
func (r *balanceRepositoryImpl) ApplyDelta(ctx context.Context, employeeID string, hours float64) (payroll.SickTimeBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sick_time_balances
		SET hours = hours + $1, updated_at = $3
		WHERE employee_id = $2
		AND hours + $1 >= 0
		RETURNING employee_id, hours, updated_at
	`

	var balance payroll.SickTimeBalance
	err := q.QueryRow(ctx, query, hours, employeeID, time.Now()).Scan(
		&balance.EmployeeID,
		&balance.Hours,
		&balance.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either the row is missing or the guard failed. Disambiguate
			// so callers can create the row on first accrual.
			if _, getErr := r.GetByEmployeeID(ctx, employeeID); getErr != nil {
				return payroll.SickTimeBalance{}, getErr
			}
			return payroll.SickTimeBalance{}, payroll.ErrTransferExceedsBalance
		}
		return payroll.SickTimeBalance{}, err
	}

	return balance, nil
}

// Create implements payroll.BalanceRepository.
func (r *balanceRepositoryImpl) Create(ctx context.Context, balance payroll.SickTimeBalance) (payroll.SickTimeBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sick_time_balances (employee_id, hours, updated_at)
		VALUES ($1, $2, NOW())
		RETURNING employee_id, hours, updated_at
	`

	var created payroll.SickTimeBalance
	err := q.QueryRow(ctx, query, balance.EmployeeID, balance.Hours).Scan(
		&created.EmployeeID,
		&created.Hours,
		&created.UpdatedAt,
	)
	if err != nil {
		return payroll.SickTimeBalance{}, err
	}

	return created, nil
}

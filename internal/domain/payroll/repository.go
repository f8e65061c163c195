package payroll

import (
	"context"
	"time"
)

// BalanceRepository - interface for sick_time_balances table
type BalanceRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (SickTimeBalance, error)
	// ApplyDelta adjusts the balance by hours (negative for a debit)
	// and succeeds only if the resulting balance stays >= 0. A debit
	// that would go negative fails with ErrTransferExceedsBalance
	// without touching the row.
	ApplyDelta(ctx context.Context, employeeID string, hours float64) (SickTimeBalance, error)
	Create(ctx context.Context, balance SickTimeBalance) (SickTimeBalance, error)
}

// ReconciliationRepository - interface for reconciliation_records table
type ReconciliationRepository interface {
	// Upsert inserts the record for (employee, date) or supersedes the
	// existing one. Prior sick_time_applied is never reduced here.
	Upsert(ctx context.Context, record ReconciliationRecord) (ReconciliationRecord, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*ReconciliationRecord, error)
	ListByRange(ctx context.Context, employeeID string, from, to time.Time) ([]ReconciliationRecord, error)
	ListAllByRange(ctx context.Context, from, to time.Time) ([]ReconciliationRecord, error)
}

package payroll

import (
	"context"
	"time"
)

type PayrollService interface {
	// Periods
	ListPeriods(ctx context.Context, today time.Time) ([]PayPeriod, error)
	PeriodContaining(ctx context.Context, date string) (PayPeriod, error)
	// Balances
	GetBalance(ctx context.Context, employeeID string) (SickTimeBalance, error)
	AdjustBalance(ctx context.Context, req AdjustBalanceRequest) (SickTimeBalance, error)
	// Reconciliation
	Reconcile(ctx context.Context, req ReconcileRequest) (ReconciliationRecord, error)
	GetReconciliation(ctx context.Context, employeeID, date string) (ReconciliationRecord, error)
	// Reporting
	PeriodReport(ctx context.Context, req PeriodReportRequest) (PeriodReport, error)
	ExportPeriodReport(ctx context.Context, req PeriodReportRequest) ([]byte, error)
}

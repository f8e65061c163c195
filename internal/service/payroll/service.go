package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rangeops/backoffice-go/internal/config"
	"github.com/rangeops/backoffice-go/internal/domain/employee"
	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/domain/schedule"
	"github.com/rangeops/backoffice-go/internal/domain/timeclock"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
	"github.com/rangeops/backoffice-go/internal/repository/postgresql"
)

type payrollServiceImpl struct {
	db           *database.DB
	periods      *payroll.PeriodGenerator
	balanceRepo  payroll.BalanceRepository
	reconRepo    payroll.ReconciliationRepository
	eventRepo    timeclock.EventRepository
	shiftRepo    schedule.ShiftRepository
	employeeRepo employee.EmployeeRepository
	cfg          config.PayrollConfig
	now          func() time.Time
	runTx        func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error
}

func NewPayrollService(
	db *database.DB,
	periods *payroll.PeriodGenerator,
	balanceRepo payroll.BalanceRepository,
	reconRepo payroll.ReconciliationRepository,
	eventRepo timeclock.EventRepository,
	shiftRepo schedule.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	cfg config.PayrollConfig,
) payroll.PayrollService {
	return &payrollServiceImpl{
		db:           db,
		periods:      periods,
		balanceRepo:  balanceRepo,
		reconRepo:    reconRepo,
		eventRepo:    eventRepo,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		cfg:          cfg,
		now:          time.Now,
		runTx:        postgresql.WithTransaction,
	}
}

// ListPeriods implements payroll.PayrollService.
func (s *payrollServiceImpl) ListPeriods(ctx context.Context, today time.Time) ([]payroll.PayPeriod, error) {
	if today.IsZero() {
		today = s.now()
	}
	return s.periods.PeriodsThrough(today)
}

// PeriodContaining implements payroll.PayrollService.
func (s *payrollServiceImpl) PeriodContaining(ctx context.Context, date string) (payroll.PayPeriod, error) {
	day, err := payroll.ParseDate(date)
	if err != nil {
		return payroll.PayPeriod{}, err
	}
	return s.periods.PeriodContaining(day)
}

// GetBalance implements payroll.PayrollService.
func (s *payrollServiceImpl) GetBalance(ctx context.Context, employeeID string) (payroll.SickTimeBalance, error) {
	balance, err := s.balanceRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, payroll.ErrBalanceNotFound) {
			// Never accrued anything yet: an empty balance, not a fault.
			return payroll.SickTimeBalance{EmployeeID: employeeID, Hours: 0}, nil
		}
		return payroll.SickTimeBalance{}, err
	}
	return balance, nil
}

// AdjustBalance implements payroll.PayrollService. It credits accrued
// sick time; debits only ever happen through Reconcile.
func (s *payrollServiceImpl) AdjustBalance(ctx context.Context, req payroll.AdjustBalanceRequest) (payroll.SickTimeBalance, error) {
	if err := req.Validate(); err != nil {
		return payroll.SickTimeBalance{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.SickTimeBalance{}, err
	}

	balance, err := s.balanceRepo.ApplyDelta(ctx, req.EmployeeID, req.Hours)
	if errors.Is(err, payroll.ErrBalanceNotFound) {
		return s.balanceRepo.Create(ctx, payroll.SickTimeBalance{
			EmployeeID: req.EmployeeID,
			Hours:      req.Hours,
		})
	}
	return balance, err
}

// Reconcile implements payroll.PayrollService. It applies one bounded
// sick-time transfer against the day's deficit: one conditional
// balance decrement and one record upsert, inside one transaction.
// Every precondition is rechecked against freshly read state, so
// retrying an already-confirmed transfer is rejected (the deficit is
// covered) rather than double-applied.
func (s *payrollServiceImpl) Reconcile(ctx context.Context, req payroll.ReconcileRequest) (payroll.ReconciliationRecord, error) {
	if err := req.Validate(); err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	day, err := payroll.ParseDate(req.Date)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	event, err := s.eventRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return payroll.ReconciliationRecord{}, fmt.Errorf("failed to load clock event: %w", err)
	}
	if event == nil {
		return payroll.ReconciliationRecord{}, payroll.ErrRecordNotFound
	}

	worked, err := WorkedHours(*event)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	scheduled := 0.0
	shift, err := s.shiftRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return payroll.ReconciliationRecord{}, fmt.Errorf("failed to load scheduled shift: %w", err)
	}
	if shift != nil {
		scheduled = shift.Hours
	}

	alreadyApplied := 0.0
	existing, err := s.reconRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return payroll.ReconciliationRecord{}, fmt.Errorf("failed to load reconciliation record: %w", err)
	}
	if existing != nil {
		alreadyApplied = existing.SickTimeApplied
	}

	balance, err := s.GetBalance(ctx, req.EmployeeID)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	amount, err := planTransfer(scheduled, worked, alreadyApplied, req.RequestedHours, balance.Hours)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	var out payroll.ReconciliationRecord
	err = s.runTx(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		newBalance, err := s.balanceRepo.ApplyDelta(txCtx, req.EmployeeID, -amount)
		if err != nil {
			return err
		}

		record := payroll.ReconciliationRecord{
			EmployeeID:       req.EmployeeID,
			Date:             day,
			ScheduledHours:   RoundHours(scheduled),
			WorkedHours:      RoundHours(worked),
			DifferenceHours:  RoundHours(DeltaHours(scheduled, worked)),
			SickTimeApplied:  RoundHours(alreadyApplied + amount),
			ResultingBalance: RoundHours(newBalance.Hours),
			Status:           payroll.ReconciliationStatusReconciled,
		}

		out, err = s.reconRepo.Upsert(txCtx, record)
		return err
	})
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	return out, nil
}

// GetReconciliation implements payroll.PayrollService. It returns the
// stored record for the day, or an on-demand unreconciled computation
// when none has been applied yet.
func (s *payrollServiceImpl) GetReconciliation(ctx context.Context, employeeID, date string) (payroll.ReconciliationRecord, error) {
	day, err := payroll.ParseDate(date)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	existing, err := s.reconRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	event, err := s.eventRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}
	if event == nil {
		return payroll.ReconciliationRecord{}, payroll.ErrRecordNotFound
	}

	worked, err := WorkedHours(*event)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	scheduled := 0.0
	shift, err := s.shiftRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}
	if shift != nil {
		scheduled = shift.Hours
	}

	balance, err := s.GetBalance(ctx, employeeID)
	if err != nil {
		return payroll.ReconciliationRecord{}, err
	}

	return payroll.ReconciliationRecord{
		EmployeeID:       employeeID,
		Date:             day,
		ScheduledHours:   RoundHours(scheduled),
		WorkedHours:      RoundHours(worked),
		DifferenceHours:  RoundHours(DeltaHours(scheduled, worked)),
		SickTimeApplied:  0,
		ResultingBalance: RoundHours(balance.Hours),
		Status:           payroll.ReconciliationStatusUnreconciled,
	}, nil
}

// PeriodReport implements payroll.PayrollService.
func (s *payrollServiceImpl) PeriodReport(ctx context.Context, req payroll.PeriodReportRequest) (payroll.PeriodReport, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodReport{}, err
	}

	var period *payroll.PayPeriod
	var from, to time.Time

	if req.PeriodDate != "" {
		day, err := payroll.ParseDate(req.PeriodDate)
		if err != nil {
			return payroll.PeriodReport{}, err
		}
		p, err := s.periods.PeriodContaining(day)
		if err != nil {
			return payroll.PeriodReport{}, err
		}
		period = &p
		from, to = p.Start, p.End
	} else {
		from = s.periods.Anchor()
		if req.Today != "" {
			day, err := payroll.ParseDate(req.Today)
			if err != nil {
				return payroll.PeriodReport{}, err
			}
			to = day
		} else {
			to = s.now()
		}
	}

	records, err := s.collectDayRecords(ctx, req.EmployeeID, from, to)
	if err != nil {
		return payroll.PeriodReport{}, err
	}

	return AssembleReport(records, period, s.cfg.DailyOvertimeThreshold), nil
}

// collectDayRecords joins clock events, shifts and reconciliation
// records into per-day records for report assembly.
func (s *payrollServiceImpl) collectDayRecords(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.DayRecord, error) {
	var (
		events []timeclock.Event
		shifts []schedule.Shift
		recons []payroll.ReconciliationRecord
		err    error
	)

	if employeeID != "" {
		events, err = s.eventRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
		if err != nil {
			return nil, err
		}
		shifts, err = s.shiftRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
		if err != nil {
			return nil, err
		}
		recons, err = s.reconRepo.ListByRange(ctx, employeeID, from, to)
		if err != nil {
			return nil, err
		}
	} else {
		events, err = s.eventRepo.ListByRange(ctx, from, to)
		if err != nil {
			return nil, err
		}
		shifts, err = s.shiftRepo.ListByRange(ctx, from, to)
		if err != nil {
			return nil, err
		}
		recons, err = s.reconRepo.ListAllByRange(ctx, from, to)
		if err != nil {
			return nil, err
		}
	}

	dayKey := func(employeeID string, date time.Time) string {
		return employeeID + "|" + date.Format("2006-01-02")
	}

	shiftByDay := make(map[string]schedule.Shift, len(shifts))
	for _, sh := range shifts {
		shiftByDay[dayKey(sh.EmployeeID, sh.Date)] = sh
	}

	sickByDay := make(map[string]float64, len(recons))
	for _, rec := range recons {
		sickByDay[dayKey(rec.EmployeeID, rec.Date)] = rec.SickTimeApplied
	}

	records := make([]payroll.DayRecord, 0, len(events))
	for _, event := range events {
		key := dayKey(event.EmployeeID, event.Date)

		rec := payroll.DayRecord{
			EmployeeID:   event.EmployeeID,
			Date:         event.Date,
			SickTimeUsed: sickByDay[key],
		}
		if event.EmployeeName != nil {
			rec.EmployeeName = *event.EmployeeName
		}
		if sh, ok := shiftByDay[key]; ok {
			rec.ScheduledHours = sh.Hours
		}
		if worked, err := WorkedHours(event); err == nil {
			rec.WorkedHours = worked
			rec.Complete = true
		}

		records = append(records, rec)
	}

	return records, nil
}

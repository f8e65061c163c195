package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rangeops/backoffice-go/internal/config"
	"github.com/rangeops/backoffice-go/internal/domain/employee"
	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/domain/schedule"
	"github.com/rangeops/backoffice-go/internal/domain/timeclock"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== in-memory fakes =====

type fakeEventRepo struct {
	events map[string]timeclock.Event // employeeID|date
}

func eventKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeEventRepo) Create(ctx context.Context, e timeclock.Event) (timeclock.Event, error) {
	f.events[eventKey(e.EmployeeID, e.Date)] = e
	return e, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (timeclock.Event, error) {
	return timeclock.Event{}, timeclock.ErrEventNotFound
}

func (f *fakeEventRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timeclock.Event, error) {
	if e, ok := f.events[eventKey(employeeID, date)]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeEventRepo) ListByRange(ctx context.Context, from, to time.Time) ([]timeclock.Event, error) {
	var out []timeclock.Event
	for _, e := range f.events {
		if !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]timeclock.Event, error) {
	var out []timeclock.Event
	for _, e := range f.events {
		if e.EmployeeID == employeeID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListOpen(ctx context.Context) ([]timeclock.Event, error) { return nil, nil }
func (f *fakeEventRepo) Update(ctx context.Context, e timeclock.Event) error    { return nil }
func (f *fakeEventRepo) Delete(ctx context.Context, id string) error            { return nil }

type fakeShiftRepo struct {
	shifts map[string]schedule.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s schedule.Shift) (schedule.Shift, error) {
	f.shifts[eventKey(s.EmployeeID, s.Date)] = s
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	return schedule.Shift{}, schedule.ErrShiftNotFound
}

func (f *fakeShiftRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*schedule.Shift, error) {
	if s, ok := f.shifts[eventKey(employeeID, date)]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeShiftRepo) ListByRange(ctx context.Context, from, to time.Time) ([]schedule.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s schedule.Shift) error { return nil }
func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error        { return nil }

type fakeBalanceRepo struct {
	balances map[string]float64
	writes   int
}

func (f *fakeBalanceRepo) GetByEmployeeID(ctx context.Context, employeeID string) (payroll.SickTimeBalance, error) {
	hours, ok := f.balances[employeeID]
	if !ok {
		return payroll.SickTimeBalance{}, payroll.ErrBalanceNotFound
	}
	return payroll.SickTimeBalance{EmployeeID: employeeID, Hours: hours}, nil
}

func (f *fakeBalanceRepo) ApplyDelta(ctx context.Context, employeeID string, hours float64) (payroll.SickTimeBalance, error) {
	current, ok := f.balances[employeeID]
	if !ok {
		return payroll.SickTimeBalance{}, payroll.ErrBalanceNotFound
	}
	next := current + hours
	if next < 0 {
		return payroll.SickTimeBalance{}, payroll.ErrTransferExceedsBalance
	}
	f.balances[employeeID] = next
	f.writes++
	return payroll.SickTimeBalance{EmployeeID: employeeID, Hours: next}, nil
}

func (f *fakeBalanceRepo) Create(ctx context.Context, b payroll.SickTimeBalance) (payroll.SickTimeBalance, error) {
	f.balances[b.EmployeeID] = b.Hours
	f.writes++
	return b, nil
}

type fakeReconRepo struct {
	records map[string]payroll.ReconciliationRecord
	writes  int
}

func (f *fakeReconRepo) Upsert(ctx context.Context, r payroll.ReconciliationRecord) (payroll.ReconciliationRecord, error) {
	f.records[eventKey(r.EmployeeID, r.Date)] = r
	f.writes++
	return r, nil
}

func (f *fakeReconRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*payroll.ReconciliationRecord, error) {
	if r, ok := f.records[eventKey(employeeID, date)]; ok {
		return &r, nil
	}
	return nil, nil
}

func (f *fakeReconRepo) ListByRange(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.ReconciliationRecord, error) {
	return nil, nil
}

func (f *fakeReconRepo) ListAllByRange(ctx context.Context, from, to time.Time) ([]payroll.ReconciliationRecord, error) {
	return nil, nil
}

type fakeEmployeeRepo struct{}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, FullName: "Test Employee"}, nil
}
func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error           { return nil }

// ===== harness =====

type fixture struct {
	svc      *payrollServiceImpl
	events   *fakeEventRepo
	shifts   *fakeShiftRepo
	balances *fakeBalanceRepo
	recons   *fakeReconRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gen, err := payroll.NewPeriodGenerator(payroll.DefaultAnchorDate, payroll.DefaultPeriodDays)
	require.NoError(t, err)

	f := &fixture{
		events:   &fakeEventRepo{events: make(map[string]timeclock.Event)},
		shifts:   &fakeShiftRepo{shifts: make(map[string]schedule.Shift)},
		balances: &fakeBalanceRepo{balances: make(map[string]float64)},
		recons:   &fakeReconRepo{records: make(map[string]payroll.ReconciliationRecord)},
	}

	f.svc = &payrollServiceImpl{
		periods:      gen,
		balanceRepo:  f.balances,
		reconRepo:    f.recons,
		eventRepo:    f.events,
		shiftRepo:    f.shifts,
		employeeRepo: &fakeEmployeeRepo{},
		cfg: config.PayrollConfig{
			AnchorDate:             payroll.DefaultAnchorDate,
			PeriodDays:             payroll.DefaultPeriodDays,
			DailyOvertimeThreshold: 9,
		},
		now: func() time.Time { return day("2023-10-06") },
		runTx: func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
	return f
}

func (f *fixture) seedDay(t *testing.T, employeeID, date, start, end string, scheduled float64) {
	t.Helper()
	ctx := context.Background()

	event := timeclock.Event{EmployeeID: employeeID, Date: day(date), StartTime: start}
	if end != "" {
		event.EndTime = &end
	}
	_, err := f.events.Create(ctx, event)
	require.NoError(t, err)

	if scheduled > 0 {
		_, err = f.shifts.Create(ctx, schedule.Shift{
			EmployeeID: employeeID,
			Date:       day(date),
			Hours:      scheduled,
			Status:     schedule.ShiftStatusScheduled,
		})
		require.NoError(t, err)
	}
}

// ===== reconciliation scenarios =====

// Scheduled 8.0, worked 5.5 from the clock times, balance 10.0,
// transfer the full 2.5 deficit: balance ends at 7.5 and the record
// carries the applied sick time.
func TestReconcile_FullTransfer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.seedDay(t, "e1", "2023-10-05", "09:00", "14:30", 8.0)
	f.balances.balances["e1"] = 10.0

	record, err := f.svc.Reconcile(ctx, payroll.ReconcileRequest{
		EmployeeID: "e1",
		Date:       "2023-10-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, record.ScheduledHours)
	assert.Equal(t, 5.5, record.WorkedHours)
	assert.Equal(t, 2.5, record.DifferenceHours)
	assert.Equal(t, 2.5, record.SickTimeApplied)
	assert.Equal(t, 7.5, record.ResultingBalance)
	assert.Equal(t, payroll.ReconciliationStatusReconciled, record.Status)
	assert.Equal(t, 7.5, f.balances.balances["e1"])
}

// balance=1.0, deficit=2.5, requested=2.5: rejected, balance untouched.
func TestReconcile_RejectedExceedsBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.seedDay(t, "e1", "2023-10-05", "09:00", "14:30", 8.0)
	f.balances.balances["e1"] = 1.0

	_, err := f.svc.Reconcile(ctx, payroll.ReconcileRequest{
		EmployeeID:     "e1",
		Date:           "2023-10-05",
		RequestedHours: 2.5,
	})
	assert.ErrorIs(t, err, payroll.ErrTransferExceedsBalance)
	assert.Equal(t, 1.0, f.balances.balances["e1"])
	assert.Zero(t, f.recons.writes, "no record written on rejection")
}

func TestReconcile_RejectedExceedsDeficit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.seedDay(t, "e1", "2023-10-05", "09:00", "14:30", 8.0)
	f.balances.balances["e1"] = 10.0

	_, err := f.svc.Reconcile(ctx, payroll.ReconcileRequest{
		EmployeeID:     "e1",
		Date:           "2023-10-05",
		RequestedHours: 4.0,
	})
	assert.ErrorIs(t, err, payroll.ErrTransferExceedsDeficit)
	assert.Equal(t, 10.0, f.balances.balances["e1"])
}

// Replaying the identical request after a confirmed success must be
// rejected, not double-applied: the recomputed deficit is already
// covered.
func TestReconcile_RetryAfterSuccessRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.seedDay(t, "e1", "2023-10-05", "09:00", "14:30", 8.0)
	f.balances.balances["e1"] = 10.0

	req := payroll.ReconcileRequest{EmployeeID: "e1", Date: "2023-10-05", RequestedHours: 2.5}

	_, err := f.svc.Reconcile(ctx, req)
	require.NoError(t, err)

	_, err = f.svc.Reconcile(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrReconciliationRejected)
	assert.Equal(t, 7.5, f.balances.balances["e1"], "second attempt must not withdraw again")
}

func TestReconcile_PartialThenRemainder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.seedDay(t, "e1", "2023-10-05", "09:00", "14:30", 8.0)
	f.balances.balances["e1"] = 10.0

	_, err := f.svc.Reconcile(ctx, payroll.ReconcileRequest{
		EmployeeID: "e1", Date: "2023-10-05", RequestedHours: 1.0,
	})
	require.NoError(t, err)

	record, err := f.svc.Reconcile(ctx, payroll.ReconcileRequest{
		EmployeeID: "e1", Date: "2023-10-05",
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, record.SickTimeApplied)
	assert.Equal(t, 7.5, f.balances.balances["e1"])
}

// start_time without end_time: no delta is computable, the day must be
// excluded from reconciliation, not treated as a full-day deficit.
func TestReconcile_IncompleteRecordSkipped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.seedDay(t, "e1", "2023-10-05", "09:00", "", 8.0)
	f.balances.balances["e1"] = 10.0

	_, err := f.svc.Reconcile(ctx, payroll.ReconcileRequest{
		EmployeeID: "e1", Date: "2023-10-05",
	})
	assert.ErrorIs(t, err, payroll.ErrIncompleteRecord)
	assert.Equal(t, 10.0, f.balances.balances["e1"])
}

func TestReconcile_NoEventForDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.balances.balances["e1"] = 10.0

	_, err := f.svc.Reconcile(ctx, payroll.ReconcileRequest{
		EmployeeID: "e1", Date: "2023-10-05",
	})
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}

func TestReconcile_InvalidDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)

	_, err := f.svc.Reconcile(ctx, payroll.ReconcileRequest{
		EmployeeID: "e1", Date: "05/10/2023",
	})
	assert.Error(t, err)
}

func TestReconcile_ExactlyOneMutationEach(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.seedDay(t, "e1", "2023-10-05", "09:00", "14:30", 8.0)
	f.balances.balances["e1"] = 10.0

	_, err := f.svc.Reconcile(ctx, payroll.ReconcileRequest{
		EmployeeID: "e1", Date: "2023-10-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.balances.writes)
	assert.Equal(t, 1, f.recons.writes)
}

// ===== balance operations =====

func TestGetBalance_MissingRowIsZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)

	balance, err := f.svc.GetBalance(ctx, "e-new")
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.Hours)
}

func TestAdjustBalance_CreatesThenCredits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)

	balance, err := f.svc.AdjustBalance(ctx, payroll.AdjustBalanceRequest{
		EmployeeID: "e1", Hours: 4.0, Reason: "quarterly accrual",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, balance.Hours)

	balance, err = f.svc.AdjustBalance(ctx, payroll.AdjustBalanceRequest{
		EmployeeID: "e1", Hours: 2.0, Reason: "quarterly accrual",
	})
	require.NoError(t, err)
	assert.Equal(t, 6.0, balance.Hours)
}

func TestAdjustBalance_RejectsNonPositive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)

	_, err := f.svc.AdjustBalance(ctx, payroll.AdjustBalanceRequest{
		EmployeeID: "e1", Hours: -1.0,
	})
	assert.Error(t, err)
}

// ===== reconciliation view =====

func TestGetReconciliation_OnDemandWhenUnreconciled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	f.seedDay(t, "e1", "2023-10-05", "09:00", "14:30", 8.0)
	f.balances.balances["e1"] = 10.0

	record, err := f.svc.GetReconciliation(ctx, "e1", "2023-10-05")
	require.NoError(t, err)
	assert.Equal(t, payroll.ReconciliationStatusUnreconciled, record.Status)
	assert.Equal(t, 2.5, record.DifferenceHours)
	assert.Equal(t, 0.0, record.SickTimeApplied)
	assert.Equal(t, 10.0, record.ResultingBalance)
}

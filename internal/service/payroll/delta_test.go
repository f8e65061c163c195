package payroll

import (
	"testing"

	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/domain/timeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseClockMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		clock   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"14:30", 870, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"9am", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, err := parseClockMinutes(tc.clock)
		if tc.ok {
			require.NoErrorf(t, err, "clock %q", tc.clock)
			assert.Equal(t, tc.minutes, got)
		} else {
			assert.Errorf(t, err, "clock %q should not parse", tc.clock)
		}
	}
}

func TestWorkedHours(t *testing.T) {
	t.Parallel()

	event := timeclock.Event{StartTime: "09:00", EndTime: strPtr("14:30")}
	worked, err := WorkedHours(event)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, worked, 1e-9)
}

func TestWorkedHours_LunchDeducted(t *testing.T) {
	t.Parallel()

	event := timeclock.Event{
		StartTime:  "08:00",
		EndTime:    strPtr("17:00"),
		LunchStart: strPtr("12:00"),
		LunchEnd:   strPtr("12:45"),
	}
	worked, err := WorkedHours(event)
	require.NoError(t, err)
	assert.InDelta(t, 8.25, worked, 1e-9)
}

// An event with no clock-out has no computable delta. It must be
// flagged incomplete, never treated as a full-day deficit.
func TestWorkedHours_StillClockedIn(t *testing.T) {
	t.Parallel()

	event := timeclock.Event{StartTime: "09:00", EndTime: nil}
	_, err := WorkedHours(event)
	assert.ErrorIs(t, err, payroll.ErrIncompleteRecord)
}

func TestWorkedHours_EndBeforeStart(t *testing.T) {
	t.Parallel()

	event := timeclock.Event{StartTime: "17:00", EndTime: strPtr("09:00")}
	_, err := WorkedHours(event)
	assert.ErrorIs(t, err, timeclock.ErrEndBeforeStart)
}

func TestDeltaHours(t *testing.T) {
	t.Parallel()

	// Worked less than scheduled: positive deficit.
	assert.InDelta(t, 2.5, DeltaHours(8.0, 5.5), 1e-9)
	// Worked more than scheduled: negative, no action taken.
	assert.InDelta(t, -1.0, DeltaHours(8.0, 9.0), 1e-9)
}

func TestRoundHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.5, RoundHours(5.5))
	assert.Equal(t, 8.33, RoundHours(499.9/60.0))
	assert.Equal(t, 0.0, RoundHours(0.001))
}

func TestPlanTransfer_FullDeficitByDefault(t *testing.T) {
	t.Parallel()

	amount, err := planTransfer(8.0, 5.5, 0, 0, 10.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, amount, 1e-9)
}

func TestPlanTransfer_PartialTransfer(t *testing.T) {
	t.Parallel()

	amount, err := planTransfer(8.0, 5.5, 0, 1.0, 10.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, amount, 1e-9)
}

func TestPlanTransfer_ExceedsDeficit(t *testing.T) {
	t.Parallel()

	_, err := planTransfer(8.0, 5.5, 0, 3.0, 10.0)
	assert.ErrorIs(t, err, payroll.ErrTransferExceedsDeficit)
	assert.ErrorIs(t, err, payroll.ErrReconciliationRejected)
}

func TestPlanTransfer_ExceedsBalance(t *testing.T) {
	t.Parallel()

	_, err := planTransfer(8.0, 5.5, 0, 2.5, 1.0)
	assert.ErrorIs(t, err, payroll.ErrTransferExceedsBalance)
	assert.ErrorIs(t, err, payroll.ErrReconciliationRejected)
}

func TestPlanTransfer_NoDeficit(t *testing.T) {
	t.Parallel()

	// Worked at least the scheduled hours: nothing to cover.
	_, err := planTransfer(8.0, 8.0, 0, 0, 10.0)
	assert.ErrorIs(t, err, payroll.ErrNoDeficit)

	_, err = planTransfer(8.0, 9.0, 0, 0, 10.0)
	assert.ErrorIs(t, err, payroll.ErrNoDeficit)
}

// Re-running a confirmed transfer finds the deficit already covered
// and rejects instead of double-applying.
func TestPlanTransfer_RetryAfterSuccessRejected(t *testing.T) {
	t.Parallel()

	amount, err := planTransfer(8.0, 5.5, 0, 2.5, 10.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, amount, 1e-9)

	_, err = planTransfer(8.0, 5.5, 2.5, 2.5, 7.5)
	assert.ErrorIs(t, err, payroll.ErrNoDeficit)
}

func TestPlanTransfer_PartialThenRemainder(t *testing.T) {
	t.Parallel()

	amount, err := planTransfer(8.0, 5.5, 1.0, 0, 9.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, amount, 1e-9)

	// Asking for more than the remainder still fails.
	_, err = planTransfer(8.0, 5.5, 1.0, 2.5, 9.0)
	assert.ErrorIs(t, err, payroll.ErrTransferExceedsDeficit)
}

// Balances can never be driven negative through any valid sequence of
// transfers: each step is bounded by the freshly read balance.
func TestPlanTransfer_BalanceNeverNegative(t *testing.T) {
	t.Parallel()

	balance := 4.0
	days := []struct{ scheduled, worked float64 }{
		{8.0, 6.0}, {8.0, 6.5}, {8.0, 7.0},
	}

	for _, d := range days {
		amount, err := planTransfer(d.scheduled, d.worked, 0, 0, balance)
		if err != nil {
			assert.ErrorIs(t, err, payroll.ErrReconciliationRejected)
			continue
		}
		balance -= amount
		assert.GreaterOrEqual(t, balance, 0.0)
	}
	assert.GreaterOrEqual(t, balance, 0.0)
}

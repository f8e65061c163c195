package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestGenerator(t *testing.T) *PeriodGenerator {
	t.Helper()
	gen, err := NewPeriodGenerator(DefaultAnchorDate, DefaultPeriodDays)
	require.NoError(t, err)
	return gen
}

func TestNewPeriodGenerator_InvalidAnchor(t *testing.T) {
	t.Parallel()

	_, err := NewPeriodGenerator("24-09-2023", 14)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NewPeriodGenerator("not-a-date", 14)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NewPeriodGenerator(DefaultAnchorDate, 0)
	assert.Error(t, err)
}

func TestPeriodContaining_FirstPeriod(t *testing.T) {
	t.Parallel()
	gen := newTestGenerator(t)

	period, err := gen.PeriodContaining(date("2023-10-05"))
	require.NoError(t, err)

	assert.Equal(t, date("2023-09-24"), period.Start)
	assert.Equal(t, date("2023-10-07"), period.End)
	assert.Equal(t, "Sep 24 - Oct 7, 2023", period.Label)
	assert.True(t, period.Contains(date("2023-10-05")))
}

func TestPeriodContaining_BeforeAnchor(t *testing.T) {
	t.Parallel()
	gen := newTestGenerator(t)

	_, err := gen.PeriodContaining(date("2023-09-23"))
	assert.ErrorIs(t, err, ErrDateBeforeAnchor)
}

func TestPeriodContaining_Boundaries(t *testing.T) {
	t.Parallel()
	gen := newTestGenerator(t)

	// Anchor day belongs to the first period.
	first, err := gen.PeriodContaining(date("2023-09-24"))
	require.NoError(t, err)
	assert.Equal(t, date("2023-09-24"), first.Start)

	// Last day of the first period.
	endOfFirst, err := gen.PeriodContaining(date("2023-10-07"))
	require.NoError(t, err)
	assert.Equal(t, first, endOfFirst)

	// Next day rolls over into the second period.
	second, err := gen.PeriodContaining(date("2023-10-08"))
	require.NoError(t, err)
	assert.Equal(t, date("2023-10-08"), second.Start)
	assert.Equal(t, date("2023-10-21"), second.End)
}

// Every date from the anchor through today must land in exactly one
// period, and that period must agree with PeriodContaining.
func TestPeriodCoverage(t *testing.T) {
	t.Parallel()
	gen := newTestGenerator(t)

	today := date("2024-03-15")
	periods, err := gen.PeriodsThrough(today)
	require.NoError(t, err)

	for d := gen.Anchor(); !d.After(today); d = d.AddDate(0, 0, 1) {
		matches := 0
		var match PayPeriod
		for _, p := range periods {
			if p.Contains(d) {
				matches++
				match = p
			}
		}
		require.Equalf(t, 1, matches, "date %s covered by %d periods", d.Format("2006-01-02"), matches)

		containing, err := gen.PeriodContaining(d)
		require.NoError(t, err)
		assert.Equal(t, match, containing)
	}
}

func TestPeriodContiguity(t *testing.T) {
	t.Parallel()
	gen := newTestGenerator(t)

	periods, err := gen.PeriodsThrough(date("2024-06-30"))
	require.NoError(t, err)
	require.Greater(t, len(periods), 2)

	// Listed most recent first.
	for i := 0; i < len(periods)-1; i++ {
		later, earlier := periods[i], periods[i+1]
		assert.True(t, later.Start.After(earlier.End))
		assert.Equal(t, earlier.End.AddDate(0, 0, 1), later.Start,
			"period %q must start the day after %q ends", later.Label, earlier.Label)
		assert.Equal(t, earlier.Start.AddDate(0, 0, 13), earlier.End)
	}
}

func TestPeriodsThrough_AnchorDay(t *testing.T) {
	t.Parallel()
	gen := newTestGenerator(t)

	periods, err := gen.PeriodsThrough(date("2023-09-24"))
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, date("2023-09-24"), periods[0].Start)
	assert.Equal(t, date("2023-10-07"), periods[0].End)
}

func TestPeriodLabel(t *testing.T) {
	t.Parallel()

	gen, err := NewPeriodGenerator("2023-10-01", 14)
	require.NoError(t, err)

	period, err := gen.PeriodContaining(date("2023-10-05"))
	require.NoError(t, err)
	assert.Equal(t, "Oct 1 - Oct 14, 2023", period.Label)

	// A period spanning a year boundary shows both years.
	yearEnd, err := gen.PeriodContaining(date("2023-12-31"))
	require.NoError(t, err)
	assert.Equal(t, "Dec 24, 2023 - Jan 6, 2024", yearEnd.Label)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	parsed, err := ParseDate("2023-10-05")
	require.NoError(t, err)
	assert.Equal(t, date("2023-10-05"), parsed)

	_, err = ParseDate("10/05/2023")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

package payroll

import (
	"fmt"
	"time"
)

// DefaultAnchorDate is the Sunday the first pay period starts on.
const DefaultAnchorDate = "2023-09-24"

// DefaultPeriodDays is the pay period length: two Sunday-aligned weeks.
const DefaultPeriodDays = 14

// PeriodGenerator derives pay periods from a fixed anchor date. It
// holds no clock of its own; "today" is always an explicit argument so
// the derivation is a pure function of its inputs.
type PeriodGenerator struct {
	anchor     time.Time
	periodDays int
}

// NewPeriodGenerator builds a generator from an anchor date string
// (YYYY-MM-DD) and a period length in days.
func NewPeriodGenerator(anchorDate string, periodDays int) (*PeriodGenerator, error) {
	anchor, err := ParseDate(anchorDate)
	if err != nil {
		return nil, err
	}
	if periodDays <= 0 {
		return nil, fmt.Errorf("period length must be positive, got %d", periodDays)
	}
	return &PeriodGenerator{anchor: anchor, periodDays: periodDays}, nil
}

// ParseDate parses a YYYY-MM-DD date string. A malformed input fails
// with ErrInvalidDate; it is never coerced to the current date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Anchor returns the generator's anchor date.
func (g *PeriodGenerator) Anchor() time.Time {
	return g.anchor
}

// PeriodContaining returns the unique pay period whose closed interval
// bounds date. Dates before the anchor fail with ErrDateBeforeAnchor.
func (g *PeriodGenerator) PeriodContaining(date time.Time) (PayPeriod, error) {
	d := dateOnly(date)
	if d.Before(g.anchor) {
		return PayPeriod{}, fmt.Errorf("%w: %s is before %s",
			ErrDateBeforeAnchor, d.Format("2006-01-02"), g.anchor.Format("2006-01-02"))
	}
	offset := daysBetween(g.anchor, d)
	index := offset / g.periodDays
	return g.periodAt(index), nil
}

// PeriodsThrough returns every pay period from the anchor through the
// one containing today, most recent first.
func (g *PeriodGenerator) PeriodsThrough(today time.Time) ([]PayPeriod, error) {
	current, err := g.PeriodContaining(today)
	if err != nil {
		return nil, err
	}
	count := daysBetween(g.anchor, current.Start)/g.periodDays + 1
	periods := make([]PayPeriod, 0, count)
	for i := count - 1; i >= 0; i-- {
		periods = append(periods, g.periodAt(i))
	}
	return periods, nil
}

func (g *PeriodGenerator) periodAt(index int) PayPeriod {
	start := g.anchor.AddDate(0, 0, index*g.periodDays)
	end := start.AddDate(0, 0, g.periodDays-1)
	return PayPeriod{
		Label: periodLabel(start, end),
		Start: start,
		End:   end,
	}
}

// periodLabel formats a period as "Oct 1 - Oct 14, 2023". When the
// period spans a year boundary both years are shown.
func periodLabel(start, end time.Time) string {
	if start.Year() != end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b. Both are normalized to
// calendar dates first, so DST shifts cannot skew the count.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

package payroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/domain/timeclock"
)

const minutesPerHour = 60.0

// hoursEpsilon absorbs float noise when comparing hour amounts that
// went through the minutes conversion.
const hoursEpsilon = 1e-9

// parseClockMinutes converts a 24-hour "HH:MM" clock string to minutes
// since midnight.
func parseClockMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: clock time %q", payroll.ErrInvalidDate, clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: clock time %q", payroll.ErrInvalidDate, clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: clock time %q", payroll.ErrInvalidDate, clock)
	}
	return hours*60 + minutes, nil
}

// WorkedMinutes derives the minutes worked from a clock event: end
// minus start, less the lunch window when one was recorded. An event
// with no end time fails with ErrIncompleteRecord; it is not a
// full-day deficit, just not computable.
func WorkedMinutes(event timeclock.Event) (int, error) {
	if event.EndTime == nil {
		return 0, payroll.ErrIncompleteRecord
	}

	start, err := parseClockMinutes(event.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := parseClockMinutes(*event.EndTime)
	if err != nil {
		return 0, err
	}
	if end < start {
		return 0, timeclock.ErrEndBeforeStart
	}

	worked := end - start

	if event.LunchStart != nil && event.LunchEnd != nil {
		lunchStart, err := parseClockMinutes(*event.LunchStart)
		if err != nil {
			return 0, err
		}
		lunchEnd, err := parseClockMinutes(*event.LunchEnd)
		if err != nil {
			return 0, err
		}
		if lunchEnd < lunchStart {
			return 0, timeclock.ErrEndBeforeStart
		}
		worked -= lunchEnd - lunchStart
	}

	if worked < 0 {
		worked = 0
	}
	return worked, nil
}

// WorkedHours is WorkedMinutes expressed in hours at full precision.
// Rounding happens only at the presentation step.
func WorkedHours(event timeclock.Event) (float64, error) {
	minutes, err := WorkedMinutes(event)
	if err != nil {
		return 0, err
	}
	return float64(minutes) / minutesPerHour, nil
}

// DeltaHours is scheduled minus worked: positive means the employee
// worked less than scheduled.
func DeltaHours(scheduled, worked float64) float64 {
	return scheduled - worked
}

// RoundHours rounds an hour figure to 2 decimal places for display.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// planTransfer checks a requested sick-time transfer against the
// remaining deficit and the available balance, and resolves the
// default (zero) request to the full remaining deficit. The
// conditional balance write re-enforces the balance bound at commit
// time, so a stale read here can reject but never over-withdraw.
func planTransfer(scheduled, worked, alreadyApplied, requested, balance float64) (float64, error) {
	deficit := DeltaHours(scheduled, worked)
	remaining := deficit - alreadyApplied
	if remaining <= hoursEpsilon {
		return 0, payroll.ErrNoDeficit
	}

	amount := requested
	if amount == 0 {
		amount = remaining
	}
	if amount <= 0 {
		return 0, payroll.ErrTransferNotPositive
	}
	if amount > remaining+hoursEpsilon {
		return 0, payroll.ErrTransferExceedsDeficit
	}
	if amount > balance+hoursEpsilon {
		return 0, payroll.ErrTransferExceedsBalance
	}
	return amount, nil
}

package payroll

import (
	"time"
)

// PayPeriod is a derived value object, never stored. Periods are
// contiguous closed intervals walked forward from the anchor date, so
// every date on or after the anchor belongs to exactly one period.
type PayPeriod struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether date falls inside the period (both ends
// inclusive).
func (p PayPeriod) Contains(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

// SickTimeBalance is the per-employee accrued sick-hour allowance.
// The stored value is never negative; reconciliation decrements it
// through a conditional write only.
type SickTimeBalance struct {
	EmployeeID string    `json:"employee_id"`
	Hours      float64   `json:"hours"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ReconciliationStatus string

const (
	ReconciliationStatusUnreconciled ReconciliationStatus = "unreconciled"
	ReconciliationStatusReconciled   ReconciliationStatus = "reconciled"
)

// ReconciliationRecord captures one employee-day's scheduled/worked
// comparison and any sick time applied against the shortfall. Records
// are superseded by later computations, never deleted, so corrections
// stay visible in the audit trail.
type ReconciliationRecord struct {
	ID               string               `json:"id"`
	EmployeeID       string               `json:"employee_id"`
	Date             time.Time            `json:"date"`
	ScheduledHours   float64              `json:"scheduled_hours"`
	WorkedHours      float64              `json:"worked_hours"`
	DifferenceHours  float64              `json:"difference_hours"`
	SickTimeApplied  float64              `json:"sick_time_applied"`
	ResultingBalance float64              `json:"resulting_balance"`
	Status           ReconciliationStatus `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// DayRecord is one employee-day assembled from a time-clock event and
// its scheduled shift. Complete is false when the event is missing an
// end time; such days carry no usable worked figure and are excluded
// from deltas and totals rather than counted as zero.
type DayRecord struct {
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   string    `json:"employee_name,omitempty"`
	Date           time.Time `json:"date"`
	ScheduledHours float64   `json:"scheduled_hours"`
	WorkedHours    float64   `json:"worked_hours"`
	SickTimeUsed   float64   `json:"sick_time_used"`
	Complete       bool      `json:"complete"`
}

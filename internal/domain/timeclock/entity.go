package timeclock

import (
	"time"
)

// Event is one employee's time-clock record for one calendar day. At
// most one event exists per (employee, date). Clock fields are 24-hour
// HH:MM strings as captured at the register.
//
// StoredTotalHours is whatever total was keyed in with the record and
// may be absent or wrong; ComputedTotalHours is derived from the clock
// times and is the figure payroll trusts. An event without an end time
// is still open and carries no computed total.
type Event struct {
	ID                 string     `json:"id"`
	EmployeeID         string     `json:"employee_id"`
	Date               time.Time  `json:"date"`
	StartTime          string     `json:"start_time"`
	EndTime            *string    `json:"end_time"`
	LunchStart         *string    `json:"lunch_start"`
	LunchEnd           *string    `json:"lunch_end"`
	StoredTotalHours   *float64   `json:"stored_total_hours"`
	ComputedTotalHours *float64   `json:"computed_total_hours"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// DTO
	EmployeeName *string `json:"employee_name,omitempty"`
}

// Open reports whether the employee is still clocked in.
func (e Event) Open() bool {
	return e.EndTime == nil
}

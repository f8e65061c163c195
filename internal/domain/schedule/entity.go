package schedule

import (
	"time"
)

type ShiftStatus string

const (
	ShiftStatusScheduled ShiftStatus = "scheduled"
	ShiftStatusCalledOut ShiftStatus = "called_out"
)

// Shift is one employee's scheduled hour count for one calendar day.
// It is the comparison baseline for payroll reconciliation.
type Shift struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employee_id"`
	Date       time.Time   `json:"date"`
	Hours      float64     `json:"hours"`
	Status     ShiftStatus `json:"status"`
	Note       *string     `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// DTO
	EmployeeName *string `json:"employee_name,omitempty"`
}

package payroll

import (
	"time"

	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

// ========================================
// PAYROLL DTOs
// ========================================

// ReconcileRequest asks for a sick-time transfer against one
// employee-day's deficit. RequestedHours of 0 means "cover the full
// remaining deficit"; a positive value may not exceed it.
type ReconcileRequest struct {
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	RequestedHours float64 `json:"requested_hours"`
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.RequestedHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_hours",
			Message: "requested_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdjustBalanceRequest credits accrued sick time to an employee.
// Debits happen only through reconciliation, never through this path.
type AdjustBalanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Hours      float64 `json:"hours"`
	Reason     string  `json:"reason"`
}

func (r *AdjustBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PeriodReportRequest selects the timesheet report scope. PeriodDate is
// any date inside the wanted pay period; empty means "all periods".
type PeriodReportRequest struct {
	PeriodDate string `json:"period_date"`
	EmployeeID string `json:"employee_id"`
	Today      string `json:"today"`
}

func (r *PeriodReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.PeriodDate) {
		if _, ok := validator.IsValidDate(r.PeriodDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "period_date",
				Message: "period_date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(r.Today) {
		if _, ok := validator.IsValidDate(r.Today); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "today",
				Message: "today must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayReportRow is one employee-day in the assembled report. Worked and
// Difference are nil for incomplete days, which render as "N/A" and
// stay out of the running totals.
type DayReportRow struct {
	Date            time.Time `json:"date"`
	ScheduledHours  float64   `json:"scheduled_hours"`
	WorkedHours     *float64  `json:"worked_hours"`
	DifferenceHours *float64  `json:"difference_hours"`
	RegularHours    float64   `json:"regular_hours"`
	OvertimeHours   float64   `json:"overtime_hours"`
	SickTimeUsed    float64   `json:"sick_time_used"`
	RunningRegular  float64   `json:"running_regular"`
	RunningOvertime float64   `json:"running_overtime"`
	RunningSick     float64   `json:"running_sick"`
	Complete        bool      `json:"complete"`
}

// TimesheetTotals summarizes one employee's period.
type TimesheetTotals struct {
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	SickTimeUsed  float64 `json:"sick_time_used"`
	IncompleteDay int     `json:"incomplete_days"`
}

// EmployeeTimesheet groups one employee's day rows, in date order.
type EmployeeTimesheet struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Days         []DayReportRow  `json:"days"`
	Totals       TimesheetTotals `json:"totals"`
}

// PeriodReport is the grouped-by-employee report for one pay period,
// or for all history when Period is nil.
type PeriodReport struct {
	Period    *PayPeriod          `json:"period,omitempty"`
	Employees []EmployeeTimesheet `json:"employees"`
}

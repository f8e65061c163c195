package timeclock

import (
	"time"

	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

// ========================================
// TIME CLOCK DTOs
// ========================================

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
}

func (r *ClockInRequest) Validate() error {
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

	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	EndTime    string  `json:"end_time"`
	LunchStart *string `json:"lunch_start"`
	LunchEnd   *string `json:"lunch_end"`
}

func (r *ClockOutRequest) Validate() error {
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

	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	} else if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if (r.LunchStart == nil) != (r.LunchEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "lunch_start",
			Message: "lunch_start and lunch_end must be provided together",
		})
	}

	if r.LunchStart != nil && !validator.IsValidClockTime(*r.LunchStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "lunch_start",
			Message: "lunch_start must be in HH:MM format",
		})
	}

	if r.LunchEnd != nil && !validator.IsValidClockTime(*r.LunchEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "lunch_end",
			Message: "lunch_end must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEventRequest struct {
	ID               string   `json:"id"`
	StartTime        *string  `json:"start_time"`
	EndTime          *string  `json:"end_time"`
	LunchStart       *string  `json:"lunch_start"`
	LunchEnd         *string  `json:"lunch_end"`
	StoredTotalHours *float64 `json:"stored_total_hours"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	for field, value := range map[string]*string{
		"start_time":  r.StartTime,
		"end_time":    r.EndTime,
		"lunch_start": r.LunchStart,
		"lunch_end":   r.LunchEnd,
	} {
		if value != nil && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventFilter struct {
	EmployeeID *string `json:"employee_id"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range returns the filter's date bounds, falling back to a wide
// default window for bounds the caller omitted. Call Validate first.
func (f *EventFilter) Range() (time.Time, time.Time) {
	from := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	if f.StartDate != nil && *f.StartDate != "" {
		if d, ok := validator.IsValidDate(*f.StartDate); ok {
			from = d
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if d, ok := validator.IsValidDate(*f.EndDate); ok {
			to = d
		}
	}
	return from, to
}

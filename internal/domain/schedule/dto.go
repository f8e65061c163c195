package schedule

import (
	"time"

	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

// ========================================
// SCHEDULE DTOs
// ========================================

type CreateShiftRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Note       *string `json:"note"`
}

func (r *CreateShiftRequest) Validate() error {
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

	if r.Hours <= 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID    string   `json:"id"`
	Hours *float64 `json:"hours"`
	Note  *string  `json:"note"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Hours != nil && (*r.Hours <= 0 || *r.Hours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CallOutRequest struct {
	ShiftID string  `json:"shift_id"`
	Reason  *string `json:"reason"`
}

func (r *CallOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// FILTERS
// ========================================

// filterRange is the default window when a filter omits its bounds.
var (
	filterRangeStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	filterRangeEnd   = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

type ShiftFilter struct {
	EmployeeID *string `json:"employee_id"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
}

func (f *ShiftFilter) Validate() error {
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

// Range returns the filter's date bounds, falling back to the default
// window for bounds the caller omitted. Call Validate first.
func (f *ShiftFilter) Range() (time.Time, time.Time) {
	from, to := filterRangeStart, filterRangeEnd
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

package certification

import (
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

// ========================================
// CERTIFICATION DTOs
// ========================================

type CreateCertificationRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Name        string  `json:"name"`
	IssuingBody *string `json:"issuing_body"`
	IssuedAt    string  `json:"issued_at"`
	ExpiresAt   *string `json:"expires_at"`
}

func (r *CreateCertificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.IssuedAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "issued_at",
			Message: "issued_at is required",
		})
	} else if _, ok := validator.IsValidDate(r.IssuedAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "issued_at",
			Message: "issued_at must be in YYYY-MM-DD format",
		})
	}

	if r.ExpiresAt != nil {
		if _, ok := validator.IsValidDate(*r.ExpiresAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expires_at",
				Message: "expires_at must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCertificationRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	IssuingBody *string `json:"issuing_body"`
	ExpiresAt   *string `json:"expires_at"`
}

func (r *UpdateCertificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.ExpiresAt != nil {
		if _, ok := validator.IsValidDate(*r.ExpiresAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expires_at",
				Message: "expires_at must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

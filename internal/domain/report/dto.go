package report

import (
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type CreateSalesRecordRequest struct {
	Date             string `json:"date"`
	Register         string `json:"register"`
	GrossAmount      string `json:"gross_amount"`
	NetAmount        string `json:"net_amount"`
	TaxAmount        string `json:"tax_amount"`
	TransactionCount int    `json:"transaction_count"`
}

func (r *CreateSalesRecordRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if validator.IsEmpty(r.Register) {
		errs = append(errs, validator.ValidationError{
			Field:   "register",
			Message: "register is required",
		})
	}

	for field, value := range map[string]string{
		"gross_amount": r.GrossAmount,
		"net_amount":   r.NetAmount,
		"tax_amount":   r.TaxAmount,
	} {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if r.TransactionCount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "transaction_count",
			Message: "transaction_count must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type KPIRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *KPIRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]string{
		"start_date": r.StartDate,
		"end_date":   r.EndDate,
	} {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		} else if _, ok := validator.IsValidDate(value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

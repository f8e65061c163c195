package response

import (
	"errors"
	"net/http"

	"github.com/rangeops/backoffice-go/internal/domain/auth"
	"github.com/rangeops/backoffice-go/internal/domain/bulletin"
	"github.com/rangeops/backoffice-go/internal/domain/certification"
	"github.com/rangeops/backoffice-go/internal/domain/employee"
	"github.com/rangeops/backoffice-go/internal/domain/inventory"
	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/domain/report"
	"github.com/rangeops/backoffice-go/internal/domain/schedule"
	"github.com/rangeops/backoffice-go/internal/domain/timeclock"
	"github.com/rangeops/backoffice-go/internal/domain/user"
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrGoogleEmailNotFound):
		Forbidden(w, "Google account is not linked to any user")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrShiftAlreadyExists):
		Conflict(w, "A shift already exists for this employee and date")
	case errors.Is(err, schedule.ErrShiftAlreadyCalledOut):
		Conflict(w, "Shift has already been called out")

	// Time clock domain errors
	case errors.Is(err, timeclock.ErrEventNotFound):
		NotFound(w, "Time clock event not found")
	case errors.Is(err, timeclock.ErrAlreadyClockedIn):
		Conflict(w, "Employee already has a clock-in for this date")
	case errors.Is(err, timeclock.ErrNotClockedIn):
		Conflict(w, "Employee has no open clock-in for this date")
	case errors.Is(err, timeclock.ErrAlreadyClockedOut):
		Conflict(w, "Employee has already clocked out")
	case errors.Is(err, timeclock.ErrEndBeforeStart):
		BadRequest(w, "End time is before start time", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrReconciliationRejected):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrIncompleteRecord):
		BadRequest(w, "Time clock record is missing an end time", nil)
	case errors.Is(err, payroll.ErrDateBeforeAnchor):
		BadRequest(w, "Date falls before the first pay period", nil)
	case errors.Is(err, payroll.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "No time clock record for this employee and date")
	case errors.Is(err, payroll.ErrBalanceNotFound):
		NotFound(w, "Sick time balance not found")

	// Report domain errors
	case errors.Is(err, report.ErrRecordNotFound):
		NotFound(w, "Sales record not found")
	case errors.Is(err, report.ErrInvalidRange):
		BadRequest(w, "End date is before start date", nil)

	// Bulletin domain errors
	case errors.Is(err, bulletin.ErrPostNotFound):
		NotFound(w, "Post not found")
	case errors.Is(err, bulletin.ErrNotAuthor):
		Forbidden(w, "Only the author may modify this post")

	// Certification domain errors
	case errors.Is(err, certification.ErrCertificationNotFound):
		NotFound(w, "Certification not found")

	// Inventory domain errors
	case errors.Is(err, inventory.ErrItemNotFound):
		NotFound(w, "Item not found")
	case errors.Is(err, inventory.ErrInvalidUPC):
		BadRequest(w, "UPC must be 8 to 14 digits", nil)
	case errors.Is(err, inventory.ErrLookupUnavailable):
		BadGateway(w, "Compliance API is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

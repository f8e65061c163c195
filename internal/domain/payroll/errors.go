package payroll

import (
	"errors"
	"fmt"
)

// Payroll domain errors
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrDateBeforeAnchor = errors.New("date precedes the pay period anchor")

	// ErrReconciliationRejected is the parent of every precondition
	// failure on a transfer. Handlers match on it to return a
	// validation response instead of a server fault.
	ErrReconciliationRejected = errors.New("reconciliation rejected")

	ErrTransferNotPositive    = fmt.Errorf("%w: transfer amount must be positive", ErrReconciliationRejected)
	ErrTransferExceedsDeficit = fmt.Errorf("%w: transfer exceeds the remaining deficit", ErrReconciliationRejected)
	ErrTransferExceedsBalance = fmt.Errorf("%w: transfer exceeds the available sick time balance", ErrReconciliationRejected)
	ErrNoDeficit              = fmt.Errorf("%w: no uncovered deficit for this day", ErrReconciliationRejected)

	// ErrIncompleteRecord marks a day whose clock event has no end
	// time. No delta is computable; the day is reported as N/A.
	ErrIncompleteRecord = errors.New("time clock record is incomplete")

	ErrBalanceNotFound = errors.New("sick time balance not found")
	ErrRecordNotFound  = errors.New("time clock record not found for this day")
)

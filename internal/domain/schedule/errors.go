package schedule

import "errors"

// Schedule domain errors
var (
	ErrShiftNotFound      = errors.New("scheduled shift not found")
	ErrShiftAlreadyExists = errors.New("employee already has a shift on this day")
	ErrShiftAlreadyCalledOut = errors.New("shift has already been called out")
)

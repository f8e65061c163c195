package timeclock

import "errors"

// Time clock domain errors
var (
	ErrEventNotFound     = errors.New("time clock event not found")
	ErrAlreadyClockedIn  = errors.New("employee already has a clock event for this day")
	ErrNotClockedIn      = errors.New("employee has not clocked in on this day")
	ErrAlreadyClockedOut = errors.New("employee already clocked out on this day")
	ErrEndBeforeStart    = errors.New("end time is before start time")
)

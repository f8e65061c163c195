package report

import "errors"

// Report domain errors
var (
	ErrRecordNotFound = errors.New("sales record not found")
	ErrInvalidRange   = errors.New("invalid date range")
)

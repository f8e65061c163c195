package certification

import "errors"

// Certification domain errors
var (
	ErrCertificationNotFound = errors.New("certification not found")
)

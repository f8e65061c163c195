package inventory

import "errors"

// Inventory domain errors
var (
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrLookupUnavailable  = errors.New("compliance inventory service unavailable")
	ErrInvalidUPC         = errors.New("invalid UPC")
)

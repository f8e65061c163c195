package inventory

import (
	"github.com/shopspring/decimal"
)

// Item is one inventory entry as returned by the compliance API. The
// engine never writes inventory; this is read-only plumbing for the
// lookup screens.
type Item struct {
	UPC          string          `json:"upc"`
	Name         string          `json:"name"`
	Manufacturer string          `json:"manufacturer"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	SerialNumber *string         `json:"serial_number"`
}

// SearchResult is one page of lookup results.
type SearchResult struct {
	Items      []Item `json:"items"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	TotalItems int64  `json:"total_items"`
}

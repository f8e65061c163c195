package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one register's daily sales summary as imported from
// the point-of-sale export. Money is decimal to keep cent-exact sums
// across a pay period.
type SalesRecord struct {
	ID               string          `json:"id"`
	Date             time.Time       `json:"date"`
	Register         string          `json:"register"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	TransactionCount int             `json:"transaction_count"`
	CreatedAt        time.Time       `json:"created_at"`
}

// DailyKPI aggregates every register's records for one day.
type DailyKPI struct {
	Date             time.Time       `json:"date"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	TransactionCount int             `json:"transaction_count"`
}

// KPIReport is the rolled-up sales view for a date range.
type KPIReport struct {
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	TransactionCount int             `json:"transaction_count"`
	AverageTicket    decimal.Decimal `json:"average_ticket"`
	Days             []DailyKPI      `json:"days"`
}

package report

import (
	"context"
	"time"
)

// SalesRepository - interface for sales_records table
type SalesRepository interface {
	Create(ctx context.Context, record SalesRecord) (SalesRecord, error)
	// ListPage returns one page of records within [from, to], ordered
	// by date then register. KPI assembly walks pages until a short
	// page comes back.
	ListPage(ctx context.Context, from, to time.Time, limit, offset int) ([]SalesRecord, error)
	Count(ctx context.Context, from, to time.Time) (int64, error)
}

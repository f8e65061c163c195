package timeclock

import (
	"context"
	"time"
)

// EventRepository - interface for time_clock_events table
type EventRepository interface {
	Create(ctx context.Context, event Event) (Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	// GetByEmployeeAndDate returns nil when no event exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Event, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]Event, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error)
	// ListOpen returns events that still have no end time.
	ListOpen(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, event Event) error
	Delete(ctx context.Context, id string) error
}

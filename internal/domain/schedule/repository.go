package schedule

import (
	"context"
	"time"
)

// ShiftRepository - interface for scheduled_shifts table
type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	// GetByEmployeeAndDate returns nil when no shift exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Shift, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]Shift, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Shift, error)
	Update(ctx context.Context, shift Shift) error
	Delete(ctx context.Context, id string) error
}

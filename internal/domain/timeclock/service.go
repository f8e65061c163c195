package timeclock

import (
	"context"
)

type TimeClockService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (Event, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (Event, error)
	Get(ctx context.Context, id string) (Event, error)
	List(ctx context.Context, filter EventFilter) ([]Event, error)
	Update(ctx context.Context, req UpdateEventRequest) (Event, error)
	Delete(ctx context.Context, id string) error
}

package schedule

import (
	"context"
)

type ScheduleService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (Shift, error)
	GetShift(ctx context.Context, id string) (Shift, error)
	ListShifts(ctx context.Context, filter ShiftFilter) ([]Shift, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (Shift, error)
	CallOut(ctx context.Context, req CallOutRequest) (Shift, error)
	DeleteShift(ctx context.Context, id string) error
}

package timeclock

import (
	"context"

	"github.com/rangeops/backoffice-go/internal/domain/employee"
	"github.com/rangeops/backoffice-go/internal/domain/timeclock"
	payrollsvc "github.com/rangeops/backoffice-go/internal/service/payroll"
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

type timeClockServiceImpl struct {
	eventRepo    timeclock.EventRepository
	employeeRepo employee.EmployeeRepository
}

func NewTimeClockService(
	eventRepo timeclock.EventRepository,
	employeeRepo employee.EmployeeRepository,
) timeclock.TimeClockService {
	return &timeClockServiceImpl{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
	}
}

// ClockIn implements timeclock.TimeClockService. One event per
// employee-day; a second clock-in on the same day is refused instead
// of stacking events.
func (s *timeClockServiceImpl) ClockIn(ctx context.Context, req timeclock.ClockInRequest) (timeclock.Event, error) {
	if err := req.Validate(); err != nil {
		return timeclock.Event{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return timeclock.Event{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	existing, err := s.eventRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return timeclock.Event{}, err
	}
	if existing != nil {
		return timeclock.Event{}, timeclock.ErrAlreadyClockedIn
	}

	return s.eventRepo.Create(ctx, timeclock.Event{
		EmployeeID: req.EmployeeID,
		Date:       date,
		StartTime:  req.StartTime,
	})
}

// ClockOut implements timeclock.TimeClockService. It closes the day's
// open event and stores the computed total alongside whatever the
// register keyed in; payroll only ever trusts the computed figure.
func (s *timeClockServiceImpl) ClockOut(ctx context.Context, req timeclock.ClockOutRequest) (timeclock.Event, error) {
	if err := req.Validate(); err != nil {
		return timeclock.Event{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	event, err := s.eventRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return timeclock.Event{}, err
	}
	if event == nil {
		return timeclock.Event{}, timeclock.ErrNotClockedIn
	}
	if !event.Open() {
		return timeclock.Event{}, timeclock.ErrAlreadyClockedOut
	}

	event.EndTime = &req.EndTime
	event.LunchStart = req.LunchStart
	event.LunchEnd = req.LunchEnd

	worked, err := payrollsvc.WorkedHours(*event)
	if err != nil {
		return timeclock.Event{}, err
	}
	event.ComputedTotalHours = &worked

	if err := s.eventRepo.Update(ctx, *event); err != nil {
		return timeclock.Event{}, err
	}

	return *event, nil
}

// Get implements timeclock.TimeClockService.
func (s *timeClockServiceImpl) Get(ctx context.Context, id string) (timeclock.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// List implements timeclock.TimeClockService.
func (s *timeClockServiceImpl) List(ctx context.Context, filter timeclock.EventFilter) ([]timeclock.Event, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from, to := filter.Range()

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		return s.eventRepo.ListByEmployeeAndRange(ctx, *filter.EmployeeID, from, to)
	}
	return s.eventRepo.ListByRange(ctx, from, to)
}

// Update implements timeclock.TimeClockService. Manual corrections
// land here; the computed total is refreshed from the new clock times
// whenever the event has both ends.
func (s *timeClockServiceImpl) Update(ctx context.Context, req timeclock.UpdateEventRequest) (timeclock.Event, error) {
	if err := req.Validate(); err != nil {
		return timeclock.Event{}, err
	}

	event, err := s.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timeclock.Event{}, err
	}

	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = req.EndTime
	}
	if req.LunchStart != nil {
		event.LunchStart = req.LunchStart
	}
	if req.LunchEnd != nil {
		event.LunchEnd = req.LunchEnd
	}
	if req.StoredTotalHours != nil {
		event.StoredTotalHours = req.StoredTotalHours
	}

	if !event.Open() {
		worked, err := payrollsvc.WorkedHours(event)
		if err != nil {
			return timeclock.Event{}, err
		}
		event.ComputedTotalHours = &worked
	} else {
		event.ComputedTotalHours = nil
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return timeclock.Event{}, err
	}

	return event, nil
}

// Delete implements timeclock.TimeClockService.
func (s *timeClockServiceImpl) Delete(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

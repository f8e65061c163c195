package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rangeops/backoffice-go/internal/config"
	"github.com/rangeops/backoffice-go/internal/domain/employee"
	"github.com/rangeops/backoffice-go/internal/domain/schedule"
	"github.com/rangeops/backoffice-go/internal/pkg/email"
	"github.com/rangeops/backoffice-go/internal/pkg/sse"
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

type scheduleServiceImpl struct {
	shiftRepo    schedule.ShiftRepository
	employeeRepo employee.EmployeeRepository
	emailService email.EmailService
	hub          *sse.Hub
	smtpCfg      config.SMTPConfig
}

func NewScheduleService(
	shiftRepo schedule.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	emailService email.EmailService,
	hub *sse.Hub,
	smtpCfg config.SMTPConfig,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		emailService: emailService,
		hub:          hub,
		smtpCfg:      smtpCfg,
	}
}

// CreateShift implements schedule.ScheduleService. The employee gets
// an email and connected clients get an SSE event; neither failure
// rolls back the shift itself.
func (s *scheduleServiceImpl) CreateShift(ctx context.Context, req schedule.CreateShiftRequest) (schedule.Shift, error) {
	if err := req.Validate(); err != nil {
		return schedule.Shift{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return schedule.Shift{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	existing, err := s.shiftRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return schedule.Shift{}, err
	}
	if existing != nil {
		return schedule.Shift{}, schedule.ErrShiftAlreadyExists
	}

	shift, err := s.shiftRepo.Create(ctx, schedule.Shift{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Hours:      req.Hours,
		Status:     schedule.ShiftStatusScheduled,
		Note:       req.Note,
	})
	if err != nil {
		return schedule.Shift{}, err
	}
	shift.EmployeeName = &emp.FullName

	if err := s.emailService.SendShiftAdded(
		emp.Email,
		emp.FullName,
		req.Date,
		fmt.Sprintf("%.1f", req.Hours),
	); err != nil {
		slog.Error("Failed to send shift notification", "employee_id", emp.ID, "error", err)
	}

	s.hub.Broadcast(sse.Event{
		Event: "schedule.shift_added",
		Data:  shift,
	})
	if emp.UserID != nil {
		s.hub.Publish(*emp.UserID, sse.Event{
			Event: "schedule.my_shift_added",
			Data:  shift,
		})
	}

	return shift, nil
}

// GetShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetShift(ctx context.Context, id string) (schedule.Shift, error) {
	return s.shiftRepo.GetByID(ctx, id)
}

// ListShifts implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListShifts(ctx context.Context, filter schedule.ShiftFilter) ([]schedule.Shift, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from, to := filter.Range()

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		return s.shiftRepo.ListByEmployeeAndRange(ctx, *filter.EmployeeID, from, to)
	}
	return s.shiftRepo.ListByRange(ctx, from, to)
}

// UpdateShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateShift(ctx context.Context, req schedule.UpdateShiftRequest) (schedule.Shift, error) {
	if err := req.Validate(); err != nil {
		return schedule.Shift{}, err
	}

	shift, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.Shift{}, err
	}

	if req.Hours != nil {
		shift.Hours = *req.Hours
	}
	if req.Note != nil {
		shift.Note = req.Note
	}

	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return schedule.Shift{}, err
	}

	s.hub.Broadcast(sse.Event{
		Event: "schedule.shift_updated",
		Data:  shift,
	})

	return shift, nil
}

// CallOut implements schedule.ScheduleService. The shift stays on the
// schedule marked called_out; payroll treats the day as scheduled
// hours with nothing worked.
func (s *scheduleServiceImpl) CallOut(ctx context.Context, req schedule.CallOutRequest) (schedule.Shift, error) {
	if err := req.Validate(); err != nil {
		return schedule.Shift{}, err
	}

	shift, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return schedule.Shift{}, err
	}
	if shift.Status == schedule.ShiftStatusCalledOut {
		return schedule.Shift{}, schedule.ErrShiftAlreadyCalledOut
	}

	shift.Status = schedule.ShiftStatusCalledOut
	if req.Reason != nil {
		shift.Note = req.Reason
	}

	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return schedule.Shift{}, err
	}

	name := shift.EmployeeID
	if shift.EmployeeName != nil {
		name = *shift.EmployeeName
	}
	note := ""
	if shift.Note != nil {
		note = *shift.Note
	}

	if err := s.emailService.SendCallOutNotice(
		s.smtpCfg.AlertRecipients,
		name,
		shift.Date.Format("2006-01-02"),
		note,
	); err != nil {
		slog.Error("Failed to send call-out notice", "shift_id", shift.ID, "error", err)
	}

	s.hub.Broadcast(sse.Event{
		Event: "schedule.called_out",
		Data:  shift,
	})

	return shift, nil
}

// DeleteShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rangeops/backoffice-go/internal/config"
	"github.com/rangeops/backoffice-go/internal/domain/certification"
	"github.com/rangeops/backoffice-go/internal/domain/timeclock"
	"github.com/rangeops/backoffice-go/internal/pkg/email"
)

// AlertJobs contains the operational alert cron jobs: open clock-ins
// past the daily overtime threshold and certifications nearing expiry.
type AlertJobs struct {
	eventRepo timeclock.EventRepository
	certRepo  certification.CertificationRepository
	email     email.EmailService
	cfg       config.SMTPConfig
	payroll   config.PayrollConfig
	now       func() time.Time

	// expiry reminders already sent, keyed by certification ID; reset
	// when the process restarts, which at this cadence is acceptable.
	notified map[string]struct{}
}

// NewAlertJobs creates the alert cron jobs
func NewAlertJobs(
	eventRepo timeclock.EventRepository,
	certRepo certification.CertificationRepository,
	emailService email.EmailService,
	smtpCfg config.SMTPConfig,
	payrollCfg config.PayrollConfig,
) *AlertJobs {
	return &AlertJobs{
		eventRepo: eventRepo,
		certRepo:  certRepo,
		email:     emailService,
		cfg:       smtpCfg,
		payroll:   payrollCfg,
		now:       time.Now,
		notified:  make(map[string]struct{}),
	}
}

// RegisterJobs registers all alert cron jobs
func (j *AlertJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(
		"overtime_alert",
		15*time.Minute,
		j.CheckOpenClockIns,
	)

	scheduler.AddJob(
		"certification_expiry",
		24*time.Hour,
		j.CheckExpiringCertifications,
	)
}

// CheckOpenClockIns alerts on employees still clocked in past the
// daily overtime threshold. Forgotten clock-outs surface here too, so
// someone corrects the record before payroll reads it.
func (j *AlertJobs) CheckOpenClockIns(ctx context.Context) error {
	events, err := j.eventRepo.ListOpen(ctx)
	if err != nil {
		return fmt.Errorf("failed to list open clock-ins: %w", err)
	}

	now := j.now()
	for _, event := range events {
		start, err := time.Parse("15:04", event.StartTime)
		if err != nil {
			slog.Warn("Skipping open event with bad start time", "event_id", event.ID, "start_time", event.StartTime)
			continue
		}

		clockedInAt := time.Date(
			event.Date.Year(), event.Date.Month(), event.Date.Day(),
			start.Hour(), start.Minute(), 0, 0, now.Location(),
		)
		hoursOpen := now.Sub(clockedInAt).Hours()
		if hoursOpen < j.payroll.DailyOvertimeThreshold {
			continue
		}

		name := event.EmployeeID
		if event.EmployeeName != nil {
			name = *event.EmployeeName
		}

		if err := j.email.SendOvertimeAlert(
			j.cfg.AlertRecipients,
			name,
			event.Date.Format("2006-01-02"),
			event.StartTime,
			hoursOpen,
		); err != nil {
			slog.Error("Failed to send overtime alert", "employee_id", event.EmployeeID, "error", err)
		}
	}

	return nil
}

// expiryNoticeWindow is how far ahead the expiry job looks.
const expiryNoticeWindow = 30 * 24 * time.Hour

// CheckExpiringCertifications reminds managers about credentials
// expiring within the notice window. Each certification is notified
// once per process lifetime.
func (j *AlertJobs) CheckExpiringCertifications(ctx context.Context) error {
	now := j.now()
	certs, err := j.certRepo.ListExpiringBefore(ctx, now, now.Add(expiryNoticeWindow))
	if err != nil {
		return fmt.Errorf("failed to list expiring certifications: %w", err)
	}

	for _, cert := range certs {
		if _, seen := j.notified[cert.ID]; seen {
			continue
		}

		name := cert.EmployeeID
		if cert.EmployeeName != nil {
			name = *cert.EmployeeName
		}

		if err := j.email.SendCertificationExpiry(
			j.cfg.AlertRecipients,
			name,
			cert.Name,
			cert.ExpiresAt.Format("2006-01-02"),
		); err != nil {
			slog.Error("Failed to send certification expiry reminder", "certification_id", cert.ID, "error", err)
			continue
		}
		j.notified[cert.ID] = struct{}{}
	}

	return nil
}

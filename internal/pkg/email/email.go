package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/rangeops/backoffice-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendShiftAdded(to, employeeName, date, hours string) error
	SendCallOutNotice(to []string, employeeName, date, note string) error
	SendOvertimeAlert(to []string, employeeName, date, clockedIn string, hoursOpen float64) error
	SendCertificationExpiry(to []string, employeeName, certName, expiresAt string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type shiftAddedEmailData struct {
	EmployeeName string
	Date         string
	Hours        string
}

// SendShiftAdded notifies an employee of a newly scheduled shift.
func (s *emailServiceImpl) SendShiftAdded(to, employeeName, date, hours string) error {
	data := shiftAddedEmailData{
		EmployeeName: employeeName,
		Date:         date,
		Hours:        hours,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "shift_added.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML([]string{to}, fmt.Sprintf("New shift on %s", date), body.String())
}

type callOutEmailData struct {
	EmployeeName string
	Date         string
	Note         string
}

// SendCallOutNotice alerts managers when an employee calls out of a shift.
func (s *emailServiceImpl) SendCallOutNotice(to []string, employeeName, date, note string) error {
	data := callOutEmailData{
		EmployeeName: employeeName,
		Date:         date,
		Note:         note,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "called_out.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("%s called out for %s", employeeName, date), body.String())
}

type overtimeAlertEmailData struct {
	EmployeeName string
	Date         string
	ClockedIn    string
	HoursOpen    string
}

// SendOvertimeAlert warns managers about a clock-in left open past the
// daily overtime threshold.
func (s *emailServiceImpl) SendOvertimeAlert(to []string, employeeName, date, clockedIn string, hoursOpen float64) error {
	data := overtimeAlertEmailData{
		EmployeeName: employeeName,
		Date:         date,
		ClockedIn:    clockedIn,
		HoursOpen:    fmt.Sprintf("%.1f", hoursOpen),
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "overtime_alert.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Overtime alert: %s still clocked in", employeeName), body.String())
}

type certificationExpiryEmailData struct {
	EmployeeName string
	CertName     string
	ExpiresAt    string
}

// SendCertificationExpiry reminds managers about an upcoming credential expiry.
func (s *emailServiceImpl) SendCertificationExpiry(to []string, employeeName, certName, expiresAt string) error {
	data := certificationExpiryEmailData{
		EmployeeName: employeeName,
		CertName:     certName,
		ExpiresAt:    expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "certification_expiry.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Certification expiring: %s (%s)", certName, employeeName), body.String())
}

func (s *emailServiceImpl) sendHTML(to []string, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}
	if len(to) == 0 {
		slog.Warn("No recipients configured, skipping email send", "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to[0])
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, to, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}

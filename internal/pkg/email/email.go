package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/ojt-portal/ojt-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// InterviewInfo carries the interview details rendered into the
// interview-scheduled email.
type InterviewInfo struct {
	Date     string
	Time     string
	Location string
	Type     string
	Notes    string
}

// EmailService defines the interface for sending applicant emails.
// Delivery is best effort: callers must never assume an email arrived.
type EmailService interface {
	SendApplicationReceived(to, studentName, jobTitle string) error
	SendStatusUpdate(to, studentName, jobTitle, status, notes string) error
	SendInterviewScheduled(to, studentName, jobTitle string, info InterviewInfo) error
	SendHired(to, studentName, jobTitle string) error
	SendRejected(to, studentName, jobTitle, reason string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new SMTP-backed email service instance. With no
// SMTP host configured it returns the log-only backend instead, so callers
// always get working best-effort delivery.
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	if cfg.Host == "" {
		slog.Info("SMTP not configured, emails will be logged only")
		return NewLogEmailService(), nil
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type applicationEmailData struct {
	StudentName string
	JobTitle    string
	Status      string
	Notes       string
	Interview   InterviewInfo
}

func (s *emailServiceImpl) SendApplicationReceived(to, studentName, jobTitle string) error {
	return s.render(to, fmt.Sprintf("Application received: %s", jobTitle), "application_received.html", applicationEmailData{
		StudentName: studentName,
		JobTitle:    jobTitle,
	})
}

func (s *emailServiceImpl) SendStatusUpdate(to, studentName, jobTitle, status, notes string) error {
	return s.render(to, fmt.Sprintf("Application update: %s", jobTitle), "status_update.html", applicationEmailData{
		StudentName: studentName,
		JobTitle:    jobTitle,
		Status:      status,
		Notes:       notes,
	})
}

func (s *emailServiceImpl) SendInterviewScheduled(to, studentName, jobTitle string, info InterviewInfo) error {
	return s.render(to, fmt.Sprintf("Interview scheduled: %s", jobTitle), "interview_scheduled.html", applicationEmailData{
		StudentName: studentName,
		JobTitle:    jobTitle,
		Interview:   info,
	})
}

func (s *emailServiceImpl) SendHired(to, studentName, jobTitle string) error {
	return s.render(to, fmt.Sprintf("Congratulations! You're hired: %s", jobTitle), "hired.html", applicationEmailData{
		StudentName: studentName,
		JobTitle:    jobTitle,
	})
}

func (s *emailServiceImpl) SendRejected(to, studentName, jobTitle, reason string) error {
	return s.render(to, fmt.Sprintf("Application update: %s", jobTitle), "rejected.html", applicationEmailData{
		StudentName: studentName,
		JobTitle:    jobTitle,
		Notes:       reason,
	})
}

func (s *emailServiceImpl) render(to, subject, templateName string, data applicationEmailData) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
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

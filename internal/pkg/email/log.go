package email

import (
	"log/slog"
)

// logEmailService writes emails to the application log instead of sending
// them. Used in development and in environments without an SMTP relay.
type logEmailService struct{}

// NewLogEmailService creates an email service that only logs.
func NewLogEmailService() EmailService {
	return &logEmailService{}
}

func (s *logEmailService) SendApplicationReceived(to, studentName, jobTitle string) error {
	s.log("application_received", to, jobTitle)
	return nil
}

func (s *logEmailService) SendStatusUpdate(to, studentName, jobTitle, status, notes string) error {
	s.log("status_update", to, jobTitle, "status", status)
	return nil
}

func (s *logEmailService) SendInterviewScheduled(to, studentName, jobTitle string, info InterviewInfo) error {
	s.log("interview_scheduled", to, jobTitle, "date", info.Date, "time", info.Time)
	return nil
}

func (s *logEmailService) SendHired(to, studentName, jobTitle string) error {
	s.log("hired", to, jobTitle)
	return nil
}

func (s *logEmailService) SendRejected(to, studentName, jobTitle, reason string) error {
	s.log("rejected", to, jobTitle)
	return nil
}

func (s *logEmailService) log(kind, to, jobTitle string, extra ...any) {
	args := append([]any{"kind", kind, "to", to, "job_title", jobTitle}, extra...)
	slog.Info("Email (log backend)", args...)
}

package email

import (
	"testing"

	"github.com/ojt-portal/ojt-backend-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService_ParsesTemplates(t *testing.T) {
	svc, err := NewEmailService(config.SMTPConfig{Host: "smtp.example.com"})
	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewEmailService_NoHostFallsBackToLogBackend(t *testing.T) {
	svc, err := NewEmailService(config.SMTPConfig{})
	require.NoError(t, err)
	assert.IsType(t, &logEmailService{}, svc)
}

func TestSend_LogBackendAlwaysSucceeds(t *testing.T) {
	// With no SMTP host every send goes to the log; it must succeed so
	// callers can stay on the best-effort path without special cases.
	svc, err := NewEmailService(config.SMTPConfig{})
	require.NoError(t, err)

	assert.NoError(t, svc.SendApplicationReceived("a@b.cd", "Ana", "Backend Intern"))
	assert.NoError(t, svc.SendStatusUpdate("a@b.cd", "Ana", "Backend Intern", "for_review", "looks good"))
	assert.NoError(t, svc.SendInterviewScheduled("a@b.cd", "Ana", "Backend Intern", InterviewInfo{
		Date: "2025-07-01", Time: "10:00", Location: "HQ", Type: "in_person",
	}))
	assert.NoError(t, svc.SendHired("a@b.cd", "Ana", "Backend Intern"))
	assert.NoError(t, svc.SendRejected("a@b.cd", "Ana", "Backend Intern", "position filled"))
}

func TestLogEmailService(t *testing.T) {
	svc := NewLogEmailService()
	assert.NoError(t, svc.SendHired("a@b.cd", "Ana", "Backend Intern"))
	assert.NoError(t, svc.SendRejected("a@b.cd", "Ana", "Backend Intern", ""))
}

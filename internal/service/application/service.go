package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/application"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/job"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/notification"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/student"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/email"
)

type ApplicationServiceImpl struct {
	application.ApplicationRepository
	job.JobRepository
	student.StudentRepository
	emailService email.EmailService
	notifier     notification.Queuer
}

func NewApplicationService(
	applicationRepository application.ApplicationRepository,
	jobRepository job.JobRepository,
	studentRepository student.StudentRepository,
	emailService email.EmailService,
	notifier notification.Queuer,
) application.ApplicationService {
	return &ApplicationServiceImpl{
		ApplicationRepository: applicationRepository,
		JobRepository:         jobRepository,
		StudentRepository:     studentRepository,
		emailService:          emailService,
		notifier:              notifier,
	}
}

// Submit implements application.ApplicationService.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, req application.SubmitRequest) (application.Response, error) {
	if err := req.Validate(); err != nil {
		return application.Response{}, err
	}

	applicant, err := s.StudentRepository.GetByID(ctx, req.StudentID)
	if err != nil {
		return application.Response{}, fmt.Errorf("failed to load applicant: %w", err)
	}

	posting, err := s.JobRepository.GetByID(ctx, req.JobID)
	if err != nil {
		return application.Response{}, fmt.Errorf("failed to load job posting: %w", err)
	}
	if !posting.IsActive {
		return application.Response{}, application.ErrJobNotAcceptingApps
	}

	// One application per applicant per project. Pre-checked here, not
	// enforced by the store, so a concurrent double submit can slip through.
	exists, err := s.ApplicationRepository.ExistsByEmailAndProject(ctx, applicant.Email, posting.Project)
	if err != nil {
		return application.Response{}, fmt.Errorf("failed to check for duplicate application: %w", err)
	}
	if exists {
		return application.Response{}, application.ErrDuplicateApplication
	}

	created, err := s.ApplicationRepository.Create(ctx, application.Application{
		JobID:     req.JobID,
		StudentID: req.StudentID,
		Status:    application.StatusPending,
		ResumeURL: req.ResumeURL,
		AppliedAt: time.Now().UTC(),
	})
	if err != nil {
		return application.Response{}, fmt.Errorf("failed to create application: %w", err)
	}

	if err := s.emailService.SendApplicationReceived(applicant.Email, applicant.Name, posting.Title); err != nil {
		slog.Warn("failed to send application received email",
			"application_id", created.ID, "error", err)
	}
	s.queueNotification(ctx, applicant.UserID, notification.TypeApplicationReceived,
		"Application received",
		fmt.Sprintf("Your application for %s is in and marked pending.", posting.Title),
		created.ID)

	created.StudentName = &applicant.Name
	created.StudentEmail = &applicant.Email
	created.JobTitle = &posting.Title
	created.JobProject = &posting.Project

	return application.ToResponse(created), nil
}

// UpdateStatus implements application.ApplicationService.
//
// The status write is the primary fact and the only step that can fail the
// call. Slot bookkeeping and applicant messaging run after it commits;
// their failures are logged and swallowed.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, req application.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	app, err := s.ApplicationRepository.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	update := application.StatusUpdate{
		ID:         req.ApplicationID,
		Status:     req.Status,
		ReviewedAt: &now,
		ReviewedBy: &req.ReviewerID,
	}
	// Notes land on exactly one field: the rejection reason for a
	// rejection, review notes for everything else
	if req.Notes != "" {
		if req.Status == application.StatusRejected {
			update.RejectionReason = &req.Notes
		} else {
			update.ReviewNotes = &req.Notes
		}
	}

	if err := s.ApplicationRepository.UpdateStatus(ctx, update); err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}

	s.adjustSlots(ctx, app, req.Status)

	if req.ShouldNotify() {
		s.notifyStatusChange(ctx, app, req.Status, req.Notes)
	}

	return nil
}

// adjustSlots keeps the job's filled slot counter in step with hired status
// transitions. Errors here never surface: the status change already holds.
func (s *ApplicationServiceImpl) adjustSlots(ctx context.Context, app application.Application, newStatus application.Status) {
	wasHired := app.IsHired()
	nowHired := newStatus == application.StatusHired

	switch {
	case nowHired && !wasHired:
		if err := s.JobRepository.IncrementFilledSlots(ctx, app.JobID); err != nil {
			slog.Error("failed to increment filled slots",
				"application_id", app.ID, "job_id", app.JobID, "error", err)
		}
	case wasHired && !nowHired:
		if err := s.JobRepository.DecrementFilledSlots(ctx, app.JobID); err != nil {
			slog.Error("failed to decrement filled slots",
				"application_id", app.ID, "job_id", app.JobID, "error", err)
		}
	}
}

// notifyStatusChange sends the applicant email and in-app notification that
// match the new status. Best effort.
func (s *ApplicationServiceImpl) notifyStatusChange(ctx context.Context, app application.Application, newStatus application.Status, notes string) {
	studentName := deref(app.StudentName)
	studentEmail := deref(app.StudentEmail)
	jobTitle := deref(app.JobTitle)

	var emailErr error
	notifType := notification.TypeApplicationStatus
	title := "Application status updated"
	message := fmt.Sprintf("Your application for %s is now %s.", jobTitle, newStatus)

	switch newStatus {
	case application.StatusHired:
		emailErr = s.emailService.SendHired(studentEmail, studentName, jobTitle)
		notifType = notification.TypeHired
		title = "You're hired"
		message = fmt.Sprintf("Congratulations! You have been hired for %s.", jobTitle)
	case application.StatusRejected:
		emailErr = s.emailService.SendRejected(studentEmail, studentName, jobTitle, notes)
		notifType = notification.TypeRejected
		title = "Application update"
		message = fmt.Sprintf("Your application for %s was not successful.", jobTitle)
	default:
		emailErr = s.emailService.SendStatusUpdate(studentEmail, studentName, jobTitle, string(newStatus), notes)
	}

	if emailErr != nil {
		slog.Warn("failed to send status email",
			"application_id", app.ID, "status", newStatus, "error", emailErr)
	}

	applicant, err := s.StudentRepository.GetByID(ctx, app.StudentID)
	if err != nil {
		return
	}
	s.queueNotification(ctx, applicant.UserID, notifType, title, message, app.ID)
}

func (s *ApplicationServiceImpl) queueNotification(ctx context.Context, userID *string, notifType notification.NotificationType, title, message, applicationID string) {
	if userID == nil {
		return
	}

	err := s.notifier.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: *userID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data: map[string]interface{}{
			"application_id": applicationID,
		},
	})
	if err != nil {
		slog.Warn("failed to queue application notification",
			"application_id", applicationID, "error", err)
	}
}

// ScheduleInterview implements application.ApplicationService.
func (s *ApplicationServiceImpl) ScheduleInterview(ctx context.Context, req application.ScheduleInterviewRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	app, err := s.ApplicationRepository.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	update := application.StatusUpdate{
		ID:                req.ApplicationID,
		Status:            application.StatusForInterview,
		ReviewedAt:        &now,
		ReviewedBy:        &req.ScheduledBy,
		InterviewDate:     &req.Date,
		InterviewTime:     &req.Time,
		InterviewLocation: &req.Location,
		InterviewType:     &req.Type,
	}
	if req.Notes != "" {
		update.InterviewNotes = &req.Notes
	}

	if err := s.ApplicationRepository.UpdateStatus(ctx, update); err != nil {
		return fmt.Errorf("failed to schedule interview: %w", err)
	}

	s.adjustSlots(ctx, app, application.StatusForInterview)

	if req.ShouldNotify() {
		s.notifyInterview(ctx, app, req)
	}

	return nil
}

func (s *ApplicationServiceImpl) notifyInterview(ctx context.Context, app application.Application, req application.ScheduleInterviewRequest) {
	info := email.InterviewInfo{
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Type:     string(req.Type),
		Notes:    req.Notes,
	}
	if err := s.emailService.SendInterviewScheduled(deref(app.StudentEmail), deref(app.StudentName), deref(app.JobTitle), info); err != nil {
		slog.Warn("failed to send interview email",
			"application_id", app.ID, "error", err)
	}

	applicant, err := s.StudentRepository.GetByID(ctx, app.StudentID)
	if err != nil {
		return
	}
	s.queueNotification(ctx, applicant.UserID, notification.TypeInterviewScheduled,
		"Interview scheduled",
		fmt.Sprintf("Your interview for %s is on %s at %s.", deref(app.JobTitle), req.Date, req.Time),
		app.ID)
}

// Delete implements application.ApplicationService.
//
// Deleting a hired application first releases its job slot. The release is
// best effort; the delete itself must succeed.
func (s *ApplicationServiceImpl) Delete(ctx context.Context, id string) error {
	app, err := s.ApplicationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if app.IsHired() {
		if err := s.JobRepository.DecrementFilledSlots(ctx, app.JobID); err != nil {
			slog.Error("failed to release job slot on delete",
				"application_id", app.ID, "job_id", app.JobID, "error", err)
		}
	}

	if err := s.ApplicationRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	return nil
}

// GetByID implements application.ApplicationService.
func (s *ApplicationServiceImpl) GetByID(ctx context.Context, id string) (application.Response, error) {
	app, err := s.ApplicationRepository.GetByID(ctx, id)
	if err != nil {
		return application.Response{}, err
	}
	return application.ToResponse(app), nil
}

// List implements application.ApplicationService.
func (s *ApplicationServiceImpl) List(ctx context.Context, filter application.Filter) ([]application.Response, int64, error) {
	apps, total, err := s.ApplicationRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	responses := make([]application.Response, len(apps))
	for i, app := range apps {
		responses[i] = application.ToResponse(app)
	}

	return responses, total, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

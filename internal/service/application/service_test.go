package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/application"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/job"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/notification"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/student"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/email"
)

// ============= fakes =============

type fakeApplicationRepo struct {
	apps    map[string]application.Application
	nextID  int
	updates []application.StatusUpdate
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]application.Application)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, app application.Application) (application.Application, error) {
	f.nextID++
	app.ID = fmt.Sprintf("app-%d", f.nextID)
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id string) (application.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeApplicationRepo) List(_ context.Context, _ application.Filter) ([]application.Application, int64, error) {
	var out []application.Application
	for _, app := range f.apps {
		out = append(out, app)
	}
	return out, int64(len(out)), nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, update application.StatusUpdate) error {
	app, ok := f.apps[update.ID]
	if !ok {
		return application.ErrApplicationNotFound
	}
	app.Status = update.Status
	app.ReviewedAt = update.ReviewedAt
	app.ReviewedBy = update.ReviewedBy
	if update.ReviewNotes != nil {
		app.ReviewNotes = update.ReviewNotes
	}
	if update.RejectionReason != nil {
		app.RejectionReason = update.RejectionReason
	}
	if update.InterviewDate != nil {
		app.InterviewDate = update.InterviewDate
		app.InterviewTime = update.InterviewTime
		app.InterviewLocation = update.InterviewLocation
		app.InterviewType = update.InterviewType
		app.InterviewNotes = update.InterviewNotes
	}
	f.apps[update.ID] = app
	f.updates = append(f.updates, update)
	return nil
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.apps[id]; !ok {
		return application.ErrApplicationNotFound
	}
	delete(f.apps, id)
	return nil
}

func (f *fakeApplicationRepo) ExistsByEmailAndProject(_ context.Context, email, project string) (bool, error) {
	for _, app := range f.apps {
		if app.StudentEmail != nil && *app.StudentEmail == email &&
			app.JobProject != nil && *app.JobProject == project {
			return true, nil
		}
	}
	return false, nil
}

type fakeJobRepo struct {
	jobs map[string]*job.JobPosting
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*job.JobPosting)}
}

func (f *fakeJobRepo) Create(_ context.Context, posting job.JobPosting) (job.JobPosting, error) {
	f.jobs[posting.ID] = &posting
	return posting, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (job.JobPosting, error) {
	j, ok := f.jobs[id]
	if !ok {
		return job.JobPosting{}, job.ErrJobNotFound
	}
	return *j, nil
}

func (f *fakeJobRepo) List(_ context.Context, _ job.Filter) ([]job.JobPosting, int64, error) {
	return nil, 0, nil
}

func (f *fakeJobRepo) Update(_ context.Context, _ job.UpdateRequest) error { return nil }
func (f *fakeJobRepo) Delete(_ context.Context, _ string) error            { return nil }
func (f *fakeJobRepo) SetAttachmentURL(_ context.Context, _ string, _ string) error {
	return nil
}

func (f *fakeJobRepo) IncrementFilledSlots(_ context.Context, id string) error {
	j, ok := f.jobs[id]
	if !ok {
		return job.ErrJobNotFound
	}
	if j.FilledSlots >= j.AvailableSlots {
		return job.ErrNoAvailableSlots
	}
	j.FilledSlots++
	return nil
}

func (f *fakeJobRepo) DecrementFilledSlots(_ context.Context, id string) error {
	j, ok := f.jobs[id]
	if !ok {
		return job.ErrJobNotFound
	}
	if j.FilledSlots > 0 {
		j.FilledSlots--
	}
	return nil
}

type fakeStudentRepo struct {
	students map[string]student.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[string]student.Student)}
}

func (f *fakeStudentRepo) Create(_ context.Context, s student.Student) (student.Student, error) {
	f.students[s.ID] = s
	return s, nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id string) (student.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return student.Student{}, student.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentRepo) FindByScanCode(_ context.Context, code string) ([]student.Student, error) {
	var out []student.Student
	for _, s := range f.students {
		if s.ScanCode == code || s.OJTNumber == code || s.ID == code {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) List(_ context.Context, _ student.Filter) ([]student.Student, int64, error) {
	return nil, 0, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, _ student.UpdateRequest) error { return nil }
func (f *fakeStudentRepo) Delete(_ context.Context, _ string) error                { return nil }
func (f *fakeStudentRepo) SetResumeURL(_ context.Context, _ string, _ string) error {
	return nil
}
func (f *fakeStudentRepo) ExistsByOJTNumber(_ context.Context, _ string) (bool, error) {
	return false, nil
}
func (f *fakeStudentRepo) ExistsByScanCode(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type fakeEmailService struct {
	sent    []string
	failAll bool
}

func (f *fakeEmailService) record(kind string) error {
	if f.failAll {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, kind)
	return nil
}

func (f *fakeEmailService) SendApplicationReceived(_, _, _ string) error {
	return f.record("received")
}
func (f *fakeEmailService) SendStatusUpdate(_, _, _, _, _ string) error {
	return f.record("status")
}
func (f *fakeEmailService) SendInterviewScheduled(_, _, _ string, _ email.InterviewInfo) error {
	return f.record("interview")
}
func (f *fakeEmailService) SendHired(_, _, _ string) error {
	return f.record("hired")
}
func (f *fakeEmailService) SendRejected(_, _, _, _ string) error {
	return f.record("rejected")
}

type fakeQueuer struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeQueuer) QueueNotification(_ context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

// ============= fixtures =============

type fixture struct {
	svc      application.ApplicationService
	apps     *fakeApplicationRepo
	jobs     *fakeJobRepo
	students *fakeStudentRepo
	email    *fakeEmailService
	queuer   *fakeQueuer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		apps:     newFakeApplicationRepo(),
		jobs:     newFakeJobRepo(),
		students: newFakeStudentRepo(),
		email:    &fakeEmailService{},
		queuer:   &fakeQueuer{},
	}
	f.svc = NewApplicationService(f.apps, f.jobs, f.students, f.email, f.queuer)

	userID := "user-1"
	f.students.students["stu-1"] = student.Student{
		ID:        "stu-1",
		UserID:    &userID,
		Name:      "Maria Santos",
		Email:     "maria@example.edu",
		OJTNumber: "OJT-2025-0001",
		ScanCode:  "MS0001",
		Project:   "Web Platform",
	}
	f.jobs.jobs["job-1"] = &job.JobPosting{
		ID:             "job-1",
		Title:          "Backend Intern",
		Project:        "Web Platform",
		AvailableSlots: 2,
		FilledSlots:    0,
		IsActive:       true,
	}

	return f
}

func (f *fixture) seedApplication(t *testing.T, status application.Status) string {
	t.Helper()

	name := "Maria Santos"
	mail := "maria@example.edu"
	title := "Backend Intern"
	project := "Web Platform"

	app, err := f.apps.Create(context.Background(), application.Application{
		JobID:        "job-1",
		StudentID:    "stu-1",
		Status:       status,
		StudentName:  &name,
		StudentEmail: &mail,
		JobTitle:     &title,
		JobProject:   &project,
	})
	require.NoError(t, err)
	return app.ID
}

// ============= Submit =============

func TestSubmit(t *testing.T) {
	t.Run("creates pending application", func(t *testing.T) {
		f := newFixture(t)

		resp, err := f.svc.Submit(context.Background(), application.SubmitRequest{
			JobID:     "job-1",
			StudentID: "stu-1",
		})

		require.NoError(t, err)
		assert.Equal(t, application.StatusPending, resp.Status)
		assert.False(t, resp.AppliedAt.IsZero(), "applied_at must be stamped at submission")
		assert.WithinDuration(t, time.Now().UTC(), resp.AppliedAt, time.Minute)
		assert.Equal(t, []string{"received"}, f.email.sent)
		require.Len(t, f.queuer.queued, 1)
		assert.Equal(t, notification.TypeApplicationReceived, f.queuer.queued[0].Type)
	})

	t.Run("rejects inactive job", func(t *testing.T) {
		f := newFixture(t)
		f.jobs.jobs["job-1"].IsActive = false

		_, err := f.svc.Submit(context.Background(), application.SubmitRequest{
			JobID:     "job-1",
			StudentID: "stu-1",
		})

		assert.ErrorIs(t, err, application.ErrJobNotAcceptingApps)
	})

	t.Run("rejects duplicate per email and project", func(t *testing.T) {
		f := newFixture(t)
		f.seedApplication(t, application.StatusPending)

		_, err := f.svc.Submit(context.Background(), application.SubmitRequest{
			JobID:     "job-1",
			StudentID: "stu-1",
		})

		assert.ErrorIs(t, err, application.ErrDuplicateApplication)
	})
}

// ============= UpdateStatus =============

func TestUpdateStatus(t *testing.T) {
	t.Run("hire increments filled slots once", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusForInterview)

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.StatusHired,
			ReviewerID:    "admin-1",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, f.jobs.jobs["job-1"].FilledSlots)
		assert.Equal(t, application.StatusHired, f.apps.apps[id].Status)
		assert.Equal(t, []string{"hired"}, f.email.sent)
	})

	t.Run("hired to hired does not increment again", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusHired)
		f.jobs.jobs["job-1"].FilledSlots = 1

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.StatusHired,
			ReviewerID:    "admin-1",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, f.jobs.jobs["job-1"].FilledSlots)
	})

	t.Run("reject from hired releases the slot", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusHired)
		f.jobs.jobs["job-1"].FilledSlots = 1

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.StatusRejected,
			ReviewerID:    "admin-1",
			Notes:         "position closed",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, f.jobs.jobs["job-1"].FilledSlots)
		require.NotNil(t, f.apps.apps[id].RejectionReason)
		assert.Equal(t, "position closed", *f.apps.apps[id].RejectionReason)
	})

	t.Run("rejection notes go to the rejection reason only", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusPending)

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.StatusRejected,
			ReviewerID:    "admin-1",
			Notes:         "missing prerequisites",
		})

		require.NoError(t, err)
		require.Len(t, f.apps.updates, 1)
		update := f.apps.updates[0]
		require.NotNil(t, update.RejectionReason)
		assert.Equal(t, "missing prerequisites", *update.RejectionReason)
		assert.Nil(t, update.ReviewNotes)
	})

	t.Run("non-rejection notes go to review notes only", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusPending)

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.StatusForReview,
			ReviewerID:    "admin-1",
			Notes:         "strong portfolio",
		})

		require.NoError(t, err)
		require.Len(t, f.apps.updates, 1)
		update := f.apps.updates[0]
		require.NotNil(t, update.ReviewNotes)
		assert.Equal(t, "strong portfolio", *update.ReviewNotes)
		assert.Nil(t, update.RejectionReason)
	})

	t.Run("slot counter never goes below zero", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusHired)
		// counter already drifted to zero
		f.jobs.jobs["job-1"].FilledSlots = 0

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.StatusRejected,
			ReviewerID:    "admin-1",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, f.jobs.jobs["job-1"].FilledSlots)
	})

	t.Run("full job swallows capacity error but keeps status", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusForInterview)
		f.jobs.jobs["job-1"].FilledSlots = 2 // all slots taken

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.StatusHired,
			ReviewerID:    "admin-1",
		})

		require.NoError(t, err)
		assert.Equal(t, application.StatusHired, f.apps.apps[id].Status)
		assert.Equal(t, 2, f.jobs.jobs["job-1"].FilledSlots)
	})

	t.Run("email failure does not fail the call", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusPending)
		f.email.failAll = true

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.StatusForReview,
			ReviewerID:    "admin-1",
		})

		require.NoError(t, err)
		assert.Equal(t, application.StatusForReview, f.apps.apps[id].Status)
	})

	t.Run("notify false skips messaging", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusPending)
		noNotify := false

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.StatusForReview,
			ReviewerID:    "admin-1",
			Notify:        &noNotify,
		})

		require.NoError(t, err)
		assert.Empty(t, f.email.sent)
		assert.Empty(t, f.queuer.queued)
	})

	t.Run("unknown application", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: "missing",
			Status:        application.StatusForReview,
			ReviewerID:    "admin-1",
		})

		assert.ErrorIs(t, err, application.ErrApplicationNotFound)
	})

	t.Run("invalid status rejected before any write", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusPending)

		err := f.svc.UpdateStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: id,
			Status:        application.Status("approved"),
			ReviewerID:    "admin-1",
		})

		require.Error(t, err)
		assert.Equal(t, application.StatusPending, f.apps.apps[id].Status)
		assert.Empty(t, f.apps.updates)
	})
}

// ============= ScheduleInterview =============

func TestScheduleInterview(t *testing.T) {
	t.Run("moves to for_interview with details", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusForReview)

		err := f.svc.ScheduleInterview(context.Background(), application.ScheduleInterviewRequest{
			ApplicationID: id,
			Date:          "2026-09-15",
			Time:          "14:00",
			Location:      "Conference Room B",
			Type:          application.InterviewInPerson,
			ScheduledBy:   "admin-1",
		})

		require.NoError(t, err)
		got := f.apps.apps[id]
		assert.Equal(t, application.StatusForInterview, got.Status)
		require.NotNil(t, got.InterviewDate)
		assert.Equal(t, "2026-09-15", *got.InterviewDate)
		assert.Equal(t, "14:00", *got.InterviewTime)
		assert.Equal(t, []string{"interview"}, f.email.sent)
	})

	t.Run("scheduling a hired applicant releases the slot", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusHired)
		f.jobs.jobs["job-1"].FilledSlots = 1

		err := f.svc.ScheduleInterview(context.Background(), application.ScheduleInterviewRequest{
			ApplicationID: id,
			Date:          "2026-09-15",
			Time:          "09:30",
			Location:      "Online",
			Type:          application.InterviewOnline,
			ScheduledBy:   "admin-1",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, f.jobs.jobs["job-1"].FilledSlots)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusForReview)

		err := f.svc.ScheduleInterview(context.Background(), application.ScheduleInterviewRequest{
			ApplicationID: id,
			Date:          "15-09-2026",
			Time:          "14:00",
			Location:      "Conference Room B",
			Type:          application.InterviewInPerson,
		})

		require.Error(t, err)
		assert.Equal(t, application.StatusForReview, f.apps.apps[id].Status)
	})
}

// ============= Delete =============

func TestDelete(t *testing.T) {
	t.Run("deleting a hired application releases the slot", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusHired)
		f.jobs.jobs["job-1"].FilledSlots = 1

		err := f.svc.Delete(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, 0, f.jobs.jobs["job-1"].FilledSlots)
		_, exists := f.apps.apps[id]
		assert.False(t, exists)
	})

	t.Run("deleting a pending application leaves slots alone", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedApplication(t, application.StatusPending)
		f.jobs.jobs["job-1"].FilledSlots = 1

		err := f.svc.Delete(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, 1, f.jobs.jobs["job-1"].FilledSlots)
	})

	t.Run("unknown application", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, application.ErrApplicationNotFound)
	})
}

package application

import (
	"time"

	"github.com/ojt-portal/ojt-backend-go/internal/pkg/validator"
)

// SubmitRequest is an applicant's submission for a job posting
type SubmitRequest struct {
	JobID     string `json:"job_id"`
	StudentID string `json:"student_id"`

	// Set by the handler after the resume upload, not by the client
	ResumeURL *string `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobID) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_id",
			Message: "job_id is required",
		})
	}

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest is an admin's status decision for an application
type UpdateStatusRequest struct {
	ApplicationID string `json:"-"`
	Status        Status `json:"status"`
	ReviewerID    string `json:"-"`
	Notes         string `json:"notes"`
	Notify        *bool  `json:"notify"`
}

// ShouldNotify reports whether the applicant should be emailed (default true)
func (r *UpdateStatusRequest) ShouldNotify() bool {
	return r.Notify == nil || *r.Notify
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "application_id",
			Message: "application_id is required",
		})
	}

	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, for_review, for_interview, hired, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ScheduleInterviewRequest schedules an interview and moves the application
// to for_interview
type ScheduleInterviewRequest struct {
	ApplicationID string        `json:"-"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Location      string        `json:"location"`
	Type          InterviewType `json:"type"`
	Notes         string        `json:"notes"`
	ScheduledBy   string        `json:"-"`
	Notify        *bool         `json:"notify"`
}

// ShouldNotify reports whether the applicant should be emailed (default true)
func (r *ScheduleInterviewRequest) ShouldNotify() bool {
	return r.Notify == nil || *r.Notify
}

func (r *ScheduleInterviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "application_id",
			Message: "application_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidTimeOfDay(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM format",
		})
	}

	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}

	if !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of in_person, online, phone",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StatusUpdate carries the fields the repository persists for a status change
type StatusUpdate struct {
	ID              string
	Status          Status
	ReviewedAt      *time.Time
	ReviewedBy      *string
	ReviewNotes     *string
	RejectionReason *string

	// Interview fields, set only by ScheduleInterview
	InterviewDate     *string
	InterviewTime     *string
	InterviewLocation *string
	InterviewType     *InterviewType
	InterviewNotes    *string
}

// Filter narrows application listings
type Filter struct {
	JobID     *string
	StudentID *string
	Status    *Status
	Page      int
	Limit     int
}

// Response is an application as returned by the API
type Response struct {
	ID              string     `json:"id"`
	JobID           string     `json:"job_id"`
	StudentID       string     `json:"student_id"`
	Status          Status     `json:"status"`
	ResumeURL       *string    `json:"resume_url,omitempty"`
	AppliedAt       time.Time  `json:"applied_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewNotes     *string    `json:"review_notes,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	InterviewDate     *string        `json:"interview_date,omitempty"`
	InterviewTime     *string        `json:"interview_time,omitempty"`
	InterviewLocation *string        `json:"interview_location,omitempty"`
	InterviewType     *InterviewType `json:"interview_type,omitempty"`
	InterviewNotes    *string        `json:"interview_notes,omitempty"`

	StudentName  *string `json:"student_name,omitempty"`
	StudentEmail *string `json:"student_email,omitempty"`
	JobTitle     *string `json:"job_title,omitempty"`
	JobProject   *string `json:"job_project,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts an Application entity to a Response
func ToResponse(a Application) Response {
	return Response{
		ID:                a.ID,
		JobID:             a.JobID,
		StudentID:         a.StudentID,
		Status:            a.Status,
		ResumeURL:         a.ResumeURL,
		AppliedAt:         a.AppliedAt,
		ReviewedAt:        a.ReviewedAt,
		ReviewedBy:        a.ReviewedBy,
		ReviewNotes:       a.ReviewNotes,
		RejectionReason:   a.RejectionReason,
		InterviewDate:     a.InterviewDate,
		InterviewTime:     a.InterviewTime,
		InterviewLocation: a.InterviewLocation,
		InterviewType:     a.InterviewType,
		InterviewNotes:    a.InterviewNotes,
		StudentName:       a.StudentName,
		StudentEmail:      a.StudentEmail,
		JobTitle:          a.JobTitle,
		JobProject:        a.JobProject,
		UpdatedAt:         a.UpdatedAt,
	}
}

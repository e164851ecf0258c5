package application

import (
	"time"
)

// Status represents the review status of an application
type Status string

const (
	StatusPending      Status = "pending"
	StatusForReview    Status = "for_review"
	StatusForInterview Status = "for_interview"
	StatusHired        Status = "hired"
	StatusRejected     Status = "rejected"
)

// AllStatuses returns every valid application status
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusForReview,
		StatusForInterview,
		StatusHired,
		StatusRejected,
	}
}

// IsValid checks if the status is one of the five known statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusForReview, StatusForInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

// InterviewType represents how an interview is conducted
type InterviewType string

const (
	InterviewInPerson InterviewType = "in_person"
	InterviewOnline   InterviewType = "online"
	InterviewPhone    InterviewType = "phone"
)

// IsValid checks if the interview type is known
func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewInPerson, InterviewOnline, InterviewPhone:
		return true
	}
	return false
}

// Application represents one student's application to one job posting
type Application struct {
	ID              string
	JobID           string
	StudentID       string
	Status          Status
	ResumeURL       *string
	AppliedAt       time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *string
	ReviewNotes     *string
	RejectionReason *string

	// Interview sub-fields, populated only when status is for_interview
	InterviewDate     *string
	InterviewTime     *string
	InterviewLocation *string
	InterviewType     *InterviewType
	InterviewNotes    *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	StudentName  *string
	StudentEmail *string
	JobTitle     *string
	JobProject   *string
}

// IsHired checks if the application currently occupies a job slot
func (a *Application) IsHired() bool {
	return a.Status == StatusHired
}

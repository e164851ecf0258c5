package application

import (
	"context"
)

// ApplicationService defines the application lifecycle business logic.
//
// Status changes are the primary fact: they commit even when the slot counter
// or applicant notification fails. Secondary failures are logged, never
// propagated.
type ApplicationService interface {
	// Submit creates a pending application for an active job posting,
	// rejecting duplicates per (student email, job project)
	Submit(ctx context.Context, req SubmitRequest) (Response, error)

	// UpdateStatus applies a status transition with audit fields, slot
	// side effects and best-effort applicant notification
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error

	// ScheduleInterview moves the application to for_interview and persists
	// the interview details
	ScheduleInterview(ctx context.Context, req ScheduleInterviewRequest) error

	// Delete removes an application; a hired application releases its job
	// slot first (best effort)
	Delete(ctx context.Context, id string) error

	// GetByID retrieves one application
	GetByID(ctx context.Context, id string) (Response, error)

	// List retrieves applications with filters and pagination
	List(ctx context.Context, filter Filter) ([]Response, int64, error)
}

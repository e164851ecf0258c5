package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for scan events.
type AttendanceRepository interface {
	// Create appends a new scan event
	Create(ctx context.Context, rec Record) (Record, error)

	// GetLatestByStudent returns the most recent record for a student, or
	// nil when the student has no history
	GetLatestByStudent(ctx context.Context, studentID string) (*Record, error)

	// ListSince returns all records with timestamp >= since, oldest first
	ListSince(ctx context.Context, since time.Time) ([]Record, error)

	// List retrieves records with filters and pagination, newest first
	List(ctx context.Context, filter Filter) ([]Record, int64, error)
}

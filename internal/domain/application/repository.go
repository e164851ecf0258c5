package application

import (
	"context"
)

// ApplicationRepository defines data access methods for applications.
type ApplicationRepository interface {
	// Create persists a new application (status pending, applied_at now)
	Create(ctx context.Context, app Application) (Application, error)

	// GetByID retrieves an application with joined student and job fields
	GetByID(ctx context.Context, id string) (Application, error)

	// List retrieves applications with filters and pagination
	List(ctx context.Context, filter Filter) ([]Application, int64, error)

	// UpdateStatus persists a status change plus audit and interview fields
	UpdateStatus(ctx context.Context, update StatusUpdate) error

	// Delete removes an application record
	Delete(ctx context.Context, id string) error

	// ExistsByEmailAndProject reports whether the student email already has an
	// application for any job under the given project. Best-effort duplicate
	// guard: checked before insert, not enforced by the store.
	ExistsByEmailAndProject(ctx context.Context, email, project string) (bool, error)
}

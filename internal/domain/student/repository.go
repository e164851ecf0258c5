package student

import (
	"context"
)

// StudentRepository defines data access methods for students.
type StudentRepository interface {
	Create(ctx context.Context, s Student) (Student, error)
	GetByID(ctx context.Context, id string) (Student, error)

	// FindByScanCode returns every student matching the code. The attendance
	// engine requires exactly one match to accept a scan; returning the full
	// match set lets it distinguish unknown from ambiguous.
	FindByScanCode(ctx context.Context, code string) ([]Student, error)

	List(ctx context.Context, filter Filter) ([]Student, int64, error)
	Update(ctx context.Context, req UpdateRequest) error
	Delete(ctx context.Context, id string) error
	SetResumeURL(ctx context.Context, id string, url string) error
	ExistsByOJTNumber(ctx context.Context, ojtNumber string) (bool, error)
	ExistsByScanCode(ctx context.Context, scanCode string) (bool, error)
}

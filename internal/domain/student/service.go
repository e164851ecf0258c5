package student

import (
	"context"
	"io"
)

// StudentService defines student management business logic
type StudentService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) ([]Response, int64, error)
	Update(ctx context.Context, req UpdateRequest) error
	Delete(ctx context.Context, id string) error

	// UploadResume stores a resume PDF and records its URL
	UploadResume(ctx context.Context, id string, file io.Reader, filename string) (string, error)
}

package job

import (
	"context"
	"io"
)

// JobService defines job posting business logic
type JobService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) ([]Response, int64, error)
	Update(ctx context.Context, req UpdateRequest) error
	Delete(ctx context.Context, id string) error

	// UploadAttachment stores a job attachment PDF and records its URL
	UploadAttachment(ctx context.Context, id string, file io.Reader, filename string) (string, error)
}

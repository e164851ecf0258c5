package job

import (
	"context"
)

// JobRepository defines data access methods for job postings.
type JobRepository interface {
	Create(ctx context.Context, posting JobPosting) (JobPosting, error)
	GetByID(ctx context.Context, id string) (JobPosting, error)
	List(ctx context.Context, filter Filter) ([]JobPosting, int64, error)
	Update(ctx context.Context, req UpdateRequest) error
	Delete(ctx context.Context, id string) error
	SetAttachmentURL(ctx context.Context, id string, url string) error

	// IncrementFilledSlots adds one filled slot. The write is conditional on
	// filled_slots < available_slots; under concurrent hires exactly one
	// caller wins and the rest get ErrNoAvailableSlots.
	IncrementFilledSlots(ctx context.Context, id string) error

	// DecrementFilledSlots releases one filled slot, clamped at zero.
	DecrementFilledSlots(ctx context.Context, id string) error
}

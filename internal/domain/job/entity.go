package job

import (
	"time"
)

// JobPosting represents one open OJT position
type JobPosting struct {
	ID             string
	Title          string
	Project        string
	Description    string
	Location       string
	AvailableSlots int
	FilledSlots    int
	IsActive       bool
	AttachmentURL  *string
	CreatedBy      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasOpenSlots reports whether the posting can still take a hire
func (j *JobPosting) HasOpenSlots() bool {
	return j.FilledSlots < j.AvailableSlots
}

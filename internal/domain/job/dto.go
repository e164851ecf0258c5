package job

import (
	"time"

	"github.com/ojt-portal/ojt-backend-go/internal/pkg/validator"
)

// CreateRequest creates a new job posting
type CreateRequest struct {
	Title          string `json:"title"`
	Project        string `json:"project"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	AvailableSlots int    `json:"available_slots"`
	IsActive       *bool  `json:"is_active"`
	CreatedBy      string `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Project) {
		errs = append(errs, validator.ValidationError{
			Field:   "project",
			Message: "project is required",
		})
	}

	if r.AvailableSlots < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "available_slots",
			Message: "available_slots must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRequest partially updates a job posting. filled_slots is not
// updatable here; it only moves through application status transitions.
type UpdateRequest struct {
	ID             string  `json:"-"`
	Title          *string `json:"title"`
	Project        *string `json:"project"`
	Description    *string `json:"description"`
	Location       *string `json:"location"`
	AvailableSlots *int    `json:"available_slots"`
	IsActive       *bool   `json:"is_active"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title cannot be empty",
		})
	}

	if r.AvailableSlots != nil && *r.AvailableSlots < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "available_slots",
			Message: "available_slots must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter narrows job listings
type Filter struct {
	Project    *string
	ActiveOnly bool
	Page       int
	Limit      int
}

// Response is a job posting as returned by the API
type Response struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Project        string    `json:"project"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	AvailableSlots int       `json:"available_slots"`
	FilledSlots    int       `json:"filled_slots"`
	IsActive       bool      `json:"is_active"`
	AttachmentURL  *string   `json:"attachment_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToResponse converts a JobPosting entity to a Response
func ToResponse(j JobPosting) Response {
	return Response{
		ID:             j.ID,
		Title:          j.Title,
		Project:        j.Project,
		Description:    j.Description,
		Location:       j.Location,
		AvailableSlots: j.AvailableSlots,
		FilledSlots:    j.FilledSlots,
		IsActive:       j.IsActive,
		AttachmentURL:  j.AttachmentURL,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

package student

import (
	"time"

	"github.com/ojt-portal/ojt-backend-go/internal/pkg/validator"
)

// CreateRequest registers a new student
type CreateRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	OJTNumber string  `json:"ojt_number"`
	ScanCode  string  `json:"scan_code"`
	Project   string  `json:"project"`
	UserID    *string `json:"user_id"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if !validator.IsValidOJTNumber(r.OJTNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "ojt_number",
			Message: "ojt_number must look like OJT-2025-0001",
		})
	}

	if !validator.IsValidScanCode(r.ScanCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "scan_code",
			Message: "scan_code must be 4-64 characters of letters, digits, - or _",
		})
	}

	if validator.IsEmpty(r.Project) {
		errs = append(errs, validator.ValidationError{
			Field:   "project",
			Message: "project is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRequest partially updates a student
type UpdateRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	ScanCode *string `json:"scan_code"`
	Project  *string `json:"project"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.ScanCode != nil && !validator.IsValidScanCode(*r.ScanCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "scan_code",
			Message: "scan_code must be 4-64 characters of letters, digits, - or _",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter narrows student listings
type Filter struct {
	Project *string
	Search  *string
	Page    int
	Limit   int
}

// Response is a student as returned by the API
type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	OJTNumber string    `json:"ojt_number"`
	ScanCode  string    `json:"scan_code"`
	Project   string    `json:"project"`
	ResumeURL *string   `json:"resume_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts a Student entity to a Response
func ToResponse(s Student) Response {
	return Response{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		OJTNumber: s.OJTNumber,
		ScanCode:  s.ScanCode,
		Project:   s.Project,
		ResumeURL: s.ResumeURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

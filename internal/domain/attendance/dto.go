package attendance

import (
	"time"

	"github.com/ojt-portal/ojt-backend-go/internal/pkg/validator"
)

// RecordRequest identifies the student a scan event belongs to
type RecordRequest struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	OJTNumber   string `json:"ojt_number"`
	Project     string `json:"project"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if validator.IsEmpty(r.StudentName) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_name",
			Message: "student_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateRequest carries a scanned/entered identifier
type ValidateRequest struct {
	Code string `json:"code"`
}

func (r *ValidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateResponse reports whether a scan code maps to exactly one student,
// and if so the identity fields a RecordRequest needs
type ValidateResponse struct {
	IsValid     bool   `json:"is_valid"`
	StudentID   string `json:"student_id,omitempty"`
	StudentName string `json:"student_name,omitempty"`
	OJTNumber   string `json:"ojt_number,omitempty"`
	Project     string `json:"project,omitempty"`
}

// TodayStats aggregates today's scan events
type TodayStats struct {
	TotalScans     int `json:"total_scans"`
	CheckedIn      int `json:"checked_in"`
	CheckedOut     int `json:"checked_out"`
	ActiveStudents int `json:"active_students"`
}

// Filter narrows attendance listings
type Filter struct {
	StudentID *string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

// RecordResponse is a scan event as returned by the API
type RecordResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	OJTNumber   string    `json:"ojt_number"`
	Project     string    `json:"project"`
	Timestamp   time.Time `json:"timestamp"`
	Action      Action    `json:"action"`
	Status      Status    `json:"status"`
}

// ToResponse converts a Record entity to a RecordResponse
func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:          rec.ID,
		StudentID:   rec.StudentID,
		StudentName: rec.StudentName,
		OJTNumber:   rec.OJTNumber,
		Project:     rec.Project,
		Timestamp:   rec.Timestamp,
		Action:      rec.Action,
		Status:      rec.Status,
	}
}

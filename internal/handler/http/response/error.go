package response

import (
	"errors"
	"net/http"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/application"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/attendance"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/auth"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/job"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/notification"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/student"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/user"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthEmailMissing):
		BadRequest(w, "Google account has no verified email", nil)
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, application.ErrDuplicateApplication):
		Conflict(w, "An application for this project already exists")
	case errors.Is(err, application.ErrInvalidStatus):
		BadRequest(w, "Invalid application status", nil)
	case errors.Is(err, application.ErrInvalidInterviewType):
		BadRequest(w, "Invalid interview type", nil)
	case errors.Is(err, application.ErrJobNotAcceptingApps):
		Conflict(w, "Job posting is not accepting applications")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, job.ErrNoAvailableSlots):
		Conflict(w, "No available slots on this job posting")
	case errors.Is(err, job.ErrJobInactive):
		Conflict(w, "Job posting is inactive")

	// Student domain errors
	case errors.Is(err, student.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, student.ErrOJTNumberExists):
		Conflict(w, "OJT number already registered")
	case errors.Is(err, student.ErrScanCodeExists):
		Conflict(w, "Scan code already in use")
	case errors.Is(err, student.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnknownStudent):
		NotFound(w, "No student matches this scan code")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

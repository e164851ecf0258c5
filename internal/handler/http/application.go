package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/application"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/student"
	"github.com/ojt-portal/ojt-backend-go/internal/handler/http/response"
	"github.com/ojt-portal/ojt-backend-go/internal/service/file"
)

type ApplicationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ScheduleInterview(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type applicationHandlerImpl struct {
	applicationService application.ApplicationService
	studentService     student.StudentService
	fileService        file.FileService
}

func NewApplicationHandler(
	applicationService application.ApplicationService,
	studentService student.StudentService,
	fileService file.FileService,
) ApplicationHandler {
	return &applicationHandlerImpl{
		applicationService: applicationService,
		studentService:     studentService,
		fileService:        fileService,
	}
}

// getUserIDFromContext extracts user_id from JWT context
func getUserIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}

// Submit accepts a multipart form with the application fields and an
// optional resume PDF
func (h *applicationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := application.SubmitRequest{
		JobID:     r.FormValue("job_id"),
		StudentID: r.FormValue("student_id"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if f, header, err := r.FormFile("resume"); err == nil {
		defer f.Close()
		path, err := h.fileService.UploadResume(r.Context(), req.StudentID, f, header.Filename)
		if err != nil {
			slog.Error("Submit resume upload error", "error", err)
			response.BadRequest(w, err.Error(), nil)
			return
		}
		req.ResumeURL = &path
	}

	created, err := h.applicationService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted successfully", created)
}

// UpdateStatus applies an admin status decision
func (h *applicationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicationID = chi.URLParam(r, "id")
	req.ReviewerID = getUserIDFromContext(r)

	if err := h.applicationService.UpdateStatus(r.Context(), req); err != nil {
		slog.Error("UpdateStatus service error", "application_id", req.ApplicationID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application status updated", nil)
}

// ScheduleInterview schedules an interview for the application
func (h *applicationHandlerImpl) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req application.ScheduleInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicationID = chi.URLParam(r, "id")
	req.ScheduledBy = getUserIDFromContext(r)

	if err := h.applicationService.ScheduleInterview(r.Context(), req); err != nil {
		slog.Error("ScheduleInterview service error", "application_id", req.ApplicationID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Interview scheduled", nil)
}

// Delete removes an application
func (h *applicationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.applicationService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete service error", "application_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application deleted", nil)
}

// GetByID retrieves one application
func (h *applicationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	app, err := h.applicationService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, app)
}

// List retrieves applications with filters
func (h *applicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := application.Filter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}
	if v := r.URL.Query().Get("job_id"); v != "" {
		filter.JobID = &v
	}
	if v := r.URL.Query().Get("student_id"); v != "" {
		filter.StudentID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := application.Status(v)
		if !status.IsValid() {
			response.HandleError(w, application.ErrInvalidStatus)
			return
		}
		filter.Status = &status
	}

	apps, total, err := h.applicationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, apps, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

func totalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

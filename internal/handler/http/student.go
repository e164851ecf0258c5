package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/student"
	"github.com/ojt-portal/ojt-backend-go/internal/handler/http/response"
)

type StudentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UploadResume(w http.ResponseWriter, r *http.Request)
}

type studentHandlerImpl struct {
	studentService student.StudentService
}

func NewStudentHandler(studentService student.StudentService) StudentHandler {
	return &studentHandlerImpl{studentService: studentService}
}

// Create registers a new student
func (h *studentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req student.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.studentService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create student service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Student registered", created)
}

// GetByID retrieves one student
func (h *studentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.studentService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List retrieves students with filters
func (h *studentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := student.Filter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}
	if v := r.URL.Query().Get("project"); v != "" {
		filter.Project = &v
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}

	students, total, err := h.studentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, students, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

// Update partially updates a student
func (h *studentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req student.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.studentService.Update(r.Context(), req); err != nil {
		slog.Error("Update student service error", "student_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student updated", nil)
}

// Delete removes a student
func (h *studentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.studentService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete student service error", "student_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student deleted", nil)
}

// UploadResume uploads a student resume PDF
func (h *studentHandlerImpl) UploadResume(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("resume")
	if err != nil {
		response.BadRequest(w, "resume file is required", nil)
		return
	}
	defer f.Close()

	path, err := h.studentService.UploadResume(r.Context(), id, f, header.Filename)
	if err != nil {
		slog.Error("UploadResume service error", "student_id", id, "error", err)
		if errors.Is(err, student.ErrStudentNotFound) {
			response.HandleError(w, err)
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(w, "Resume uploaded", map[string]string{"path": path})
}

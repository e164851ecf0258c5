package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/job"
	"github.com/ojt-portal/ojt-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UploadAttachment(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &jobHandlerImpl{jobService: jobService}
}

// Create creates a new job posting
func (h *jobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req job.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CreatedBy = getUserIDFromContext(r)

	created, err := h.jobService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created", created)
}

// GetByID retrieves one job posting
func (h *jobHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	posting, err := h.jobService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, posting)
}

// List retrieves job postings with filters
func (h *jobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := job.Filter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}
	if v := r.URL.Query().Get("project"); v != "" {
		filter.Project = &v
	}
	filter.ActiveOnly = getBoolQueryParam(r, "active_only", false)

	postings, total, err := h.jobService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, postings, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

// Update partially updates a job posting
func (h *jobHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.jobService.Update(r.Context(), req); err != nil {
		slog.Error("Update job service error", "job_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting updated", nil)
}

// Delete removes a job posting
func (h *jobHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete job service error", "job_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting deleted", nil)
}

// UploadAttachment uploads a job attachment PDF
func (h *jobHandlerImpl) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("attachment")
	if err != nil {
		response.BadRequest(w, "attachment file is required", nil)
		return
	}
	defer f.Close()

	path, err := h.jobService.UploadAttachment(r.Context(), id, f, header.Filename)
	if err != nil {
		slog.Error("UploadAttachment service error", "job_id", id, "error", err)
		if errors.Is(err, job.ErrJobNotFound) {
			response.HandleError(w, err)
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(w, "Attachment uploaded", map[string]string{"path": path})
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/attendance"
	"github.com/ojt-portal/ojt-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	TodayStats(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Scan records a kiosk scan event
func (h *attendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		slog.Error("Scan service error", "student_id", req.StudentID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, string(rec.Action), rec)
}

// Validate resolves a scanned identifier to a student without recording
func (h *attendanceHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req attendance.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.attendanceService.ValidateIdentifier(r.Context(), req.Code)
	if err != nil {
		slog.Error("Validate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// TodayStats returns today's attendance aggregates
func (h *attendanceHandlerImpl) TodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.TodayStats(r.Context())
	if err != nil {
		slog.Error("TodayStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// List retrieves attendance records with filters
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}
	if v := r.URL.Query().Get("student_id"); v != "" {
		filter.StudentID = &v
	}
	if v := r.URL.Query().Get("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
			return
		}
		filter.From = &from
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
			return
		}
		// inclusive end date
		end := to.Add(24 * time.Hour)
		filter.To = &end
	}

	records, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

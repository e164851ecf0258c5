package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/attendance"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/notification"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/student"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	student.StudentRepository
	notifier notification.Queuer
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	studentRepository student.StudentRepository,
	notifier notification.Queuer,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		StudentRepository:    studentRepository,
		notifier:             notifier,
	}
}

// Record implements attendance.AttendanceService.
//
// The action is decided purely by the student's most recent record: last
// status "in" makes this scan a Time Out, anything else a Time In. Two
// consecutive Time Ins cannot happen through this path.
func (a *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	latest, err := a.AttendanceRepository.GetLatestByStudent(ctx, req.StudentID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to read attendance history: %w", err)
	}

	action := attendance.ActionTimeIn
	status := attendance.StatusIn
	if latest != nil && latest.Status == attendance.StatusIn {
		action = attendance.ActionTimeOut
		status = attendance.StatusOut
	}

	rec := attendance.Record{
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		OJTNumber:   req.OJTNumber,
		Project:     req.Project,
		Timestamp:   time.Now().UTC(),
		Action:      action,
		Status:      status,
	}

	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to record attendance: %w", err)
	}

	a.notifyScan(ctx, created)

	return attendance.ToResponse(created), nil
}

// notifyScan pushes an in-app notification to the student's account, if one
// is linked. Failures are logged and swallowed: the scan already committed.
func (a *AttendanceServiceImpl) notifyScan(ctx context.Context, rec attendance.Record) {
	s, err := a.StudentRepository.GetByID(ctx, rec.StudentID)
	if err != nil || s.UserID == nil {
		return
	}

	notifType := notification.TypeAttendanceCheckIn
	title := "Checked in"
	if rec.Action == attendance.ActionTimeOut {
		notifType = notification.TypeAttendanceCheckOut
		title = "Checked out"
	}

	err = a.notifier.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: *s.UserID,
		Type:        notifType,
		Title:       title,
		Message:     fmt.Sprintf("%s at %s", rec.Action, rec.Timestamp.Format("15:04")),
		Data: map[string]interface{}{
			"record_id": rec.ID,
			"action":    string(rec.Action),
			"timestamp": rec.Timestamp,
		},
	})
	if err != nil {
		slog.Warn("failed to queue attendance notification", "student_id", rec.StudentID, "error", err)
	}
}

// ValidateIdentifier implements attendance.AttendanceService.
//
// Unknown and ambiguous codes both come back IsValid false. The kiosk only
// needs a yes or no before it commits a scan, so the two cases are not
// distinguished in the response.
func (a *AttendanceServiceImpl) ValidateIdentifier(ctx context.Context, code string) (attendance.ValidateResponse, error) {
	matches, err := a.StudentRepository.FindByScanCode(ctx, code)
	if err != nil {
		return attendance.ValidateResponse{}, fmt.Errorf("failed to look up scan code: %w", err)
	}

	if len(matches) != 1 {
		return attendance.ValidateResponse{IsValid: false}, nil
	}

	s := matches[0]
	return attendance.ValidateResponse{
		IsValid:     true,
		StudentID:   s.ID,
		StudentName: s.Name,
		OJTNumber:   s.OJTNumber,
		Project:     s.Project,
	}, nil
}

// TodayStats implements attendance.AttendanceService.
//
// Only records stamped today are considered. A student who checked in
// yesterday and never checked out does not count as active today until they
// scan again.
func (a *AttendanceServiceImpl) TodayStats(ctx context.Context) (attendance.TodayStats, error) {
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	records, err := a.AttendanceRepository.ListSince(ctx, startOfDay)
	if err != nil {
		return attendance.TodayStats{}, fmt.Errorf("failed to load today's records: %w", err)
	}

	stats := attendance.TodayStats{TotalScans: len(records)}

	// Active means the student has any check-in today, whether or not a
	// check-out followed. The kiosk shows who was on site, not who is
	// currently clocked in.
	checkedInToday := make(map[string]struct{})
	for _, rec := range records {
		if rec.Action == attendance.ActionTimeIn {
			stats.CheckedIn++
			checkedInToday[rec.StudentID] = struct{}{}
		} else {
			stats.CheckedOut++
		}
	}
	stats.ActiveStudents = len(checkedInToday)

	return stats, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.RecordResponse, int64, error) {
	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, len(records))
	for i, rec := range records {
		responses[i] = attendance.ToResponse(rec)
	}

	return responses, total, nil
}

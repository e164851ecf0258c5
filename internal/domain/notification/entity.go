package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeApplicationReceived NotificationType = "application_received"
	TypeApplicationStatus   NotificationType = "application_status"
	TypeInterviewScheduled  NotificationType = "interview_scheduled"
	TypeHired               NotificationType = "hired"
	TypeRejected            NotificationType = "rejected"
	TypeAttendanceCheckIn   NotificationType = "attendance_check_in"
	TypeAttendanceCheckOut  NotificationType = "attendance_check_out"
)

// Notification represents an in-app notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}

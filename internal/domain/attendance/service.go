package attendance

import (
	"context"
)

// AttendanceService decides whether a scan is a check-in or a check-out and
// derives daily aggregates.
type AttendanceService interface {
	// Record appends a new scan event. The action toggles off the student's
	// most recent record: last status "in" means this scan is a Time Out,
	// anything else (including no history) means Time In.
	Record(ctx context.Context, req RecordRequest) (RecordResponse, error)

	// ValidateIdentifier resolves a scan code to a student. Zero or
	// ambiguous matches come back with IsValid false. No side effects.
	ValidateIdentifier(ctx context.Context, code string) (ValidateResponse, error)

	// TodayStats aggregates scan events since the start of today
	TodayStats(ctx context.Context) (TodayStats, error)

	// List retrieves records for the admin UI
	List(ctx context.Context, filter Filter) ([]RecordResponse, int64, error)
}

package attendance

import (
	"time"
)

// Action labels a scan event the way the kiosk displays it
type Action string

const (
	ActionTimeIn  Action = "Time In"
	ActionTimeOut Action = "Time Out"
)

// Status is the student's presence state implied by the record
type Status string

const (
	StatusIn  Status = "in"
	StatusOut Status = "out"
)

// Record represents one scan event. Records are append-only: a new scan never
// rewrites history, it extends it.
type Record struct {
	ID          string
	StudentID   string
	StudentName string
	OJTNumber   string
	Project     string
	Timestamp   time.Time
	Action      Action
	Status      Status
	CreatedAt   time.Time
}

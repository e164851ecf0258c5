package student

import (
	"time"
)

// Student represents one OJT student enrolled in the portal
type Student struct {
	ID        string
	UserID    *string
	Name      string
	Email     string
	OJTNumber string
	ScanCode  string
	Project   string
	ResumeURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package job

import "errors"

var (
	ErrJobNotFound = errors.New("job posting not found")

	// ErrNoAvailableSlots is raised when a hire would push filled_slots past
	// available_slots. Callers applying it as a side effect of a status
	// change log it instead of propagating.
	ErrNoAvailableSlots = errors.New("no available slots on this job posting")

	ErrJobInactive = errors.New("job posting is inactive")
)

package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnknownStudent = errors.New("no student matches this scan code")
)

package student

import "errors"

var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrOJTNumberExists  = errors.New("OJT number already registered")
	ErrScanCodeExists   = errors.New("scan code already in use")
	ErrEmailExists      = errors.New("email already registered")
	ErrInvalidOJTNumber = errors.New("invalid OJT number format")
)

package application

import "errors"

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("you have already applied to this project")
	ErrInvalidStatus        = errors.New("invalid application status")
	ErrInvalidInterviewType = errors.New("invalid interview type")
	ErrJobNotAcceptingApps  = errors.New("job posting is not accepting applications")
)

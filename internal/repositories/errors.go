package repositories

import "errors"

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInterviewNotFound = errors.New("interview not found")
	ErrProfileNotFound   = errors.New("user profile not found")
)

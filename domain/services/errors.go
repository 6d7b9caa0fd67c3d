package services

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses.
var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTaskNotFound       = errors.New("task not found")
	ErrNoTaskIDs          = errors.New("no task IDs provided")
	ErrInvalidSortField   = errors.New("invalid sort field")
	ErrInvalidTimeWindow  = errors.New("startTime must be before endTime")
)

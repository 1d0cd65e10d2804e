package driveblock

import "errors"

// Domain-specific errors for the driveblock package.
var (
	ErrNoCalendars     = errors.New("no calendar ids configured")
	ErrEventIDRequired = errors.New("event id is required")
)

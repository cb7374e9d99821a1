package schedule

import "errors"

// Schedule domain errors
var (
	ErrNoScheduleFound = errors.New("no valid schedule found")
)

package recap

import "errors"

// Recap domain errors
var (
	ErrNoAttendanceData = errors.New("attendance data has not been loaded")
)

package employee

import "errors"

// Employee domain errors
var (
	ErrNoEmployeesFound = errors.New("no valid employee data found")
)

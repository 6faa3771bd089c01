package team

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the referenced team does not exist.
var ErrNotFound = errors.New("team not found")

// ValidationError rejects a roster mutation before anything is persisted.
// UnknownCodes lists the registration codes that matched no student.
type ValidationError struct {
	Reason       string
	UnknownCodes []string
}

func (e *ValidationError) Error() string {
	if len(e.UnknownCodes) == 0 {
		return e.Reason
	}
	return e.Reason + ": " + strings.Join(e.UnknownCodes, ", ")
}

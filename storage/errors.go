package storage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials covers both an unknown email and a failed password
// comparison, so callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports missing or malformed required fields. It is
// detected before any mutation is attempted.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing required fields (%s)", strings.Join(e.Fields, ", "))
}

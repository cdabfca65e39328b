package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCredentials is returned by Users.Authenticate for an unknown
// email or a wrong password. The two cases are not distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a create or update payload the store refused.
// Fields names every offending field; Reason is set for type or format
// problems that are not a plain missing field.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// NotFoundError reports an id with no matching record.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

// ConflictError reports a natural-key collision, such as a second user
// registering an email that is already taken.
type ConflictError struct {
	Kind  string
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Kind, e.Field)
}

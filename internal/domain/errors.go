package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed input: bad time range, duplicate id, bad enum.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference to an activity, day or itinerary that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrIndex marks a reorder position outside the current list bounds.
	ErrIndex = errors.New("index out of range")
)

// ValidationError describes a rejected field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError names the kind of entity that was missing and the lookup key.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// IndexError reports a position outside [0, Len) or [0, Len] for insertions.
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (length %d)", e.What, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndex }

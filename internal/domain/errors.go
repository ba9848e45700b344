package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a missing or empty required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError reports an unknown idea or category id.
type NotFoundError struct {
	Kind string // "idea" | "category"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// IdeaNotFound builds the NotFoundError for an idea id.
func IdeaNotFound(id string) error { return &NotFoundError{Kind: "idea", ID: id} }

// CategoryNotFound builds the NotFoundError for a category id.
func CategoryNotFound(id string) error { return &NotFoundError{Kind: "category", ID: id} }

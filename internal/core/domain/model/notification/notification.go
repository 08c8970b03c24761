// Package notification models the short outcome messages shown to the
// operator after an action, the server-side equivalent of a toast.
package notification

import (
	"time"

	"storeadmin/internal/core/domain/model/kernel"
)

// Kind tells success and failure notifications apart.
type Kind string

const (
	Success Kind = "success"
	Failure Kind = "failure"
)

// Notification is immutable once created.
type Notification struct {
	ID          kernel.ID
	Kind        Kind
	Title       string
	Description string
	// Cause is the underlying error text for failures. Empty on success.
	Cause     string
	CreatedAt time.Time
}

// NewSuccess builds a success notification.
func NewSuccess(title, description string, now time.Time) Notification {
	return Notification{
		ID:          kernel.NewRandomID("ntf"),
		Kind:        Success,
		Title:       title,
		Description: description,
		CreatedAt:   now.UTC(),
	}
}

// NewFailure builds a failure notification carrying cause for diagnostics.
func NewFailure(title, description string, cause error, now time.Time) Notification {
	n := Notification{
		ID:          kernel.NewRandomID("ntf"),
		Kind:        Failure,
		Title:       title,
		Description: description,
		CreatedAt:   now.UTC(),
	}
	if cause != nil {
		n.Cause = cause.Error()
	}
	return n
}

// IsFailure reports whether n describes a failed action.
func (n Notification) IsFailure() bool {
	return n.Kind == Failure
}

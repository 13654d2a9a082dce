package tui

import (
	"github.com/kwhalen/repbook/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error from an async operation
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// RegisteredMsg signals that account creation succeeded
type RegisteredMsg struct {
	Username string
}

// LoggedInMsg signals a successful login
type LoggedInMsg struct{}

// LoggedOutMsg signals that the session was cleared. Forced is true when the
// logout was triggered internally by a failed or impossible refresh.
type LoggedOutMsg struct {
	Forced bool
	Reason string
}

// SessionRefreshedMsg signals a successful token refresh
type SessionRefreshedMsg struct{}

// ExercisesLoadedMsg signals that the dashboard list has been fetched
type ExercisesLoadedMsg struct {
	Exercises []domain.Exercise
}

// CollectionLoadedMsg signals that the collection list has been fetched
type CollectionLoadedMsg struct {
	Exercises []domain.Exercise
}

// ExerciseMutatedMsg signals a server-acknowledged mutation; the dashboard
// re-fetches in response to resync derived counts
type ExerciseMutatedMsg struct {
	Action string // "created", "updated", "deleted", "rated", "video attached"
	Name   string
}

// ToggleAppliedMsg signals a server-acknowledged favorite/save toggle
type ToggleAppliedMsg struct {
	ExerciseID int
	Kind       string // "favorite" or "save"
}

// ToggleFailedMsg signals a rejected favorite/save toggle. The row was
// flipped before the request went out, so it must be flipped back.
type ToggleFailedMsg struct {
	ExerciseID int
	Kind       string // "favorite" or "save"
	Err        error
}

// UsersLoadedMsg carries the engagement lists for one exercise
type UsersLoadedMsg struct {
	ExerciseID int
	Users      domain.ExerciseUsers
}

// MigrationDoneMsg carries the server's migration status message
type MigrationDoneMsg struct {
	Message string
}

// UploadEventMsg carries one event from an in-flight video upload
type UploadEventMsg struct {
	ExerciseID int
	Event      domain.TransferEvent
}

// UploadChannelClosedMsg signals that the transfer event stream ended
type UploadChannelClosedMsg struct{}

// TickMsg drives the loading spinner animation
type TickMsg struct{}

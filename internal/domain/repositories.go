package domain

import (
	"context"
	"io"
)

// AuthRepository exchanges credentials and refresh tokens for session tokens
type AuthRepository interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, username, password string) error

	// Login exchanges credentials for a token pair
	Login(ctx context.Context, username, password string) (Session, error)

	// RefreshSession exchanges a refresh token for a new token pair
	RefreshSession(ctx context.Context, refreshToken string) (Session, error)
}

// ExerciseRepository provides access to the exercise catalog and the
// per-exercise engagement operations
type ExerciseRepository interface {
	// ListExercises returns all exercises visible to the viewer,
	// with viewer-relative favorite/save flags
	ListExercises(ctx context.Context) ([]Exercise, error)

	// CreateExercise creates a new exercise from the draft
	CreateExercise(ctx context.Context, draft ExerciseDraft) (Exercise, error)

	// UpdateExercise overwrites the editable fields of an exercise
	UpdateExercise(ctx context.Context, id int, draft ExerciseDraft) error

	// AttachVideo records an uploaded video URL on an exercise
	AttachVideo(ctx context.Context, id int, videoURL string) error

	// DeleteExercise removes an exercise
	DeleteExercise(ctx context.Context, id int) error

	// GetExerciseUsers returns who favorited and who saved an exercise
	GetExerciseUsers(ctx context.Context, id int) (ExerciseUsers, error)

	// SetFavorite adds or removes the viewer's favorite mark
	SetFavorite(ctx context.Context, id int, favorited bool) error

	// SetSaved adds or removes the viewer's save mark
	SetSaved(ctx context.Context, id int, saved bool) error

	// RateExercise submits a 1-5 rating
	RateExercise(ctx context.Context, id int, rating int) error
}

// CollectionRepository returns the viewer's combined favorited+saved list
type CollectionRepository interface {
	GetCollection(ctx context.Context) ([]Exercise, error)
}

// AdminRepository triggers server-side administrative operations
type AdminRepository interface {
	// MigrateExercises asks the server to copy local exercise data to the
	// cloud store. Returns the server's status message.
	MigrateExercises(ctx context.Context) (string, error)
}

// SessionStore persists the token pair across process restarts
type SessionStore interface {
	// Load reads the stored session; absent entries map to empty tokens
	Load() (Session, error)

	// Save writes both tokens in a single transaction
	Save(Session) error

	// Clear removes both tokens in a single transaction
	Clear() error
}

// VideoStorage streams a video to the object store and yields a public URL
type VideoStorage interface {
	// Upload starts a transfer of size bytes read from r, keyed under the
	// owning exercise. The returned Transfer reports progress and exactly
	// one terminal event.
	Upload(ctx context.Context, exerciseID int, filename string, r io.Reader, size int64) *Transfer
}

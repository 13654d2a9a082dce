package domain

import "fmt"

// Exercise is a server-owned record. The client never mutates one locally;
// derived counts are resynced by re-fetching after an acknowledged change.
type Exercise struct {
	ID            int     // Server-assigned identifier
	Name          string  // Display name
	Description   string  // Free-form description
	Difficulty    int     // 1 (easy) and up
	IsPublic      bool    // Visible to other users
	OwnerID       int     // Creating user
	FavoriteCount int     // How many users favorited this
	SaveCount     int     // How many users saved this
	HasFavorited  bool    // Viewer-relative: requesting user favorited this
	HasSaved      bool    // Viewer-relative: requesting user saved this
	AverageRating float64 // Mean of submitted 1-5 ratings, 0 when unrated
	VideoURL      string  // Optional demo video attachment
}

// Visibility returns a short label for the public/private flag
func (e Exercise) Visibility() string {
	if e.IsPublic {
		return "Public"
	}
	return "Private"
}

// RatingLabel returns the average rating formatted for display
func (e Exercise) RatingLabel() string {
	if e.AverageRating <= 0 {
		return "unrated"
	}
	return fmt.Sprintf("%.1f/5", e.AverageRating)
}

// HasVideo reports whether a demo video is attached
func (e Exercise) HasVideo() bool {
	return e.VideoURL != ""
}

// User identifies another account, as returned by the exercise-users listing
type User struct {
	ID       int
	Username string
}

// ExerciseUsers holds the engagement lists for a single exercise
type ExerciseUsers struct {
	FavoritedBy []User
	SavedBy     []User
}

// ExerciseDraft carries the user-editable fields for create and update calls
type ExerciseDraft struct {
	Name        string
	Description string
	Difficulty  int
	IsPublic    bool
}

// DataSource indicates which backing store the server should address.
// Purely advisory metadata toggled from the admin view.
type DataSource int

const (
	DataSourceLocal DataSource = iota
	DataSourceCloud
)

// String returns the display name for the data source
func (d DataSource) String() string {
	if d == DataSourceCloud {
		return "Cloud"
	}
	return "Local"
}

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kwhalen/repbook/internal/domain"
	"github.com/kwhalen/repbook/internal/session"
)

// Command factories for async operations. Each user action issues exactly
// one call; nothing here retries.

const requestTimeout = 30 * time.Second

// RegisterCmd creates an account
func RegisterCmd(mgr *session.Manager, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := mgr.Register(ctx, username, password); err != nil {
			return ErrMsg{Err: err, Context: "registration"}
		}
		return RegisteredMsg{Username: username}
	}
}

// LoginCmd exchanges credentials for a session
func LoginCmd(mgr *session.Manager, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := mgr.Login(ctx, username, password); err != nil {
			return ErrMsg{Err: err, Context: "login"}
		}
		return LoggedInMsg{}
	}
}

// LogoutCmd clears the session
func LogoutCmd(mgr *session.Manager) tea.Cmd {
	return func() tea.Msg {
		if err := mgr.Logout(); err != nil {
			return ErrMsg{Err: err, Context: "logout"}
		}
		return LoggedOutMsg{}
	}
}

// RefreshCmd exchanges the stored refresh token for a new pair. Failure
// (including a missing token) has already forced a logout by the time the
// message is delivered.
func RefreshCmd(mgr *session.Manager) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := mgr.Refresh(ctx); err != nil {
			return LoggedOutMsg{Forced: true, Reason: refreshFailureReason(err)}
		}
		return SessionRefreshedMsg{}
	}
}

func refreshFailureReason(err error) string {
	if err == domain.ErrNoSession {
		return "No refresh token found. Please log in again."
	}
	return "Token refresh failed. Please log in again."
}

// LoadExercisesCmd fetches the dashboard list
func LoadExercisesCmd(repo domain.ExerciseRepository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		exercises, err := repo.ListExercises(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading exercises"}
		}
		return ExercisesLoadedMsg{Exercises: exercises}
	}
}

// LoadCollectionCmd fetches the combined favorited+saved list
func LoadCollectionCmd(repo domain.CollectionRepository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		exercises, err := repo.GetCollection(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading collection"}
		}
		return CollectionLoadedMsg{Exercises: exercises}
	}
}

// CreateExerciseCmd creates an exercise from the draft
func CreateExerciseCmd(repo domain.ExerciseRepository, draft domain.ExerciseDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		created, err := repo.CreateExercise(ctx, draft)
		if err != nil {
			return ErrMsg{Err: err, Context: "creating exercise"}
		}
		return ExerciseMutatedMsg{Action: "created", Name: created.Name}
	}
}

// UpdateExerciseCmd saves edited fields
func UpdateExerciseCmd(repo domain.ExerciseRepository, id int, draft domain.ExerciseDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := repo.UpdateExercise(ctx, id, draft); err != nil {
			return ErrMsg{Err: err, Context: "updating exercise"}
		}
		return ExerciseMutatedMsg{Action: "updated", Name: draft.Name}
	}
}

// DeleteExerciseCmd removes an exercise
func DeleteExerciseCmd(repo domain.ExerciseRepository, id int, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := repo.DeleteExercise(ctx, id); err != nil {
			return ErrMsg{Err: err, Context: "deleting exercise"}
		}
		return ExerciseMutatedMsg{Action: "deleted", Name: name}
	}
}

// RateExerciseCmd submits a 1-5 rating
func RateExerciseCmd(repo domain.ExerciseRepository, id, rating int, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := repo.RateExercise(ctx, id, rating); err != nil {
			return ErrMsg{Err: err, Context: "rating exercise"}
		}
		return ExerciseMutatedMsg{Action: "rated", Name: name}
	}
}

// ToggleFavoriteCmd issues exactly one POST or DELETE depending on the
// state the row is flipping to
func ToggleFavoriteCmd(repo domain.ExerciseRepository, id int, favorited bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := repo.SetFavorite(ctx, id, favorited); err != nil {
			return ToggleFailedMsg{ExerciseID: id, Kind: "favorite", Err: err}
		}
		return ToggleAppliedMsg{ExerciseID: id, Kind: "favorite"}
	}
}

// ToggleSaveCmd issues exactly one POST or DELETE depending on the state
// the row is flipping to
func ToggleSaveCmd(repo domain.ExerciseRepository, id int, saved bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := repo.SetSaved(ctx, id, saved); err != nil {
			return ToggleFailedMsg{ExerciseID: id, Kind: "save", Err: err}
		}
		return ToggleAppliedMsg{ExerciseID: id, Kind: "save"}
	}
}

// LoadUsersCmd fetches the favorited-by/saved-by lists for one exercise
func LoadUsersCmd(repo domain.ExerciseRepository, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		users, err := repo.GetExerciseUsers(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading user list"}
		}
		return UsersLoadedMsg{ExerciseID: id, Users: users}
	}
}

// MigrateCmd triggers the server-side data migration
func MigrateCmd(repo domain.AdminRepository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		message, err := repo.MigrateExercises(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "data migration"}
		}
		return MigrationDoneMsg{Message: message}
	}
}

// AttachVideoCmd records an uploaded video URL on an exercise
func AttachVideoCmd(repo domain.ExerciseRepository, id int, videoURL, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := repo.AttachVideo(ctx, id, videoURL); err != nil {
			return ErrMsg{Err: err, Context: "attaching video"}
		}
		return ExerciseMutatedMsg{Action: "video attached", Name: name}
	}
}

// WaitForUploadCmd delivers the next event from an in-flight transfer.
// Re-issued after each event until the stream closes.
func WaitForUploadCmd(exerciseID int, transfer *domain.Transfer) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-transfer.Events()
		if !ok {
			return UploadChannelClosedMsg{}
		}
		return UploadEventMsg{ExerciseID: exerciseID, Event: event}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kwhalen/repbook/internal/domain"
)

// ListExercises returns all exercises visible to the viewer
func (c *Client) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	var dtos []exerciseDTO
	if err := c.doRequest(ctx, http.MethodGet, "/exercises/", nil, &dtos); err != nil {
		return nil, err
	}
	return mapExercises(dtos), nil
}

// CreateExercise creates a new exercise from the draft
func (c *Client) CreateExercise(ctx context.Context, draft domain.ExerciseDraft) (domain.Exercise, error) {
	req := exerciseDraftRequest{
		Name:        draft.Name,
		Description: draft.Description,
		Difficulty:  draft.Difficulty,
		IsPublic:    draft.IsPublic,
	}

	var dto exerciseDTO
	if err := c.doRequest(ctx, http.MethodPost, "/exercises/", req, &dto); err != nil {
		return domain.Exercise{}, err
	}
	return mapExercise(dto), nil
}

// UpdateExercise overwrites the editable fields of an exercise
func (c *Client) UpdateExercise(ctx context.Context, id int, draft domain.ExerciseDraft) error {
	req := exerciseDraftRequest{
		Name:        draft.Name,
		Description: draft.Description,
		Difficulty:  draft.Difficulty,
		IsPublic:    draft.IsPublic,
	}
	return c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/exercises/%d", id), req, nil)
}

// AttachVideo records an uploaded video URL on an exercise. The server
// treats the update as partial, so only the URL is sent.
func (c *Client) AttachVideo(ctx context.Context, id int, videoURL string) error {
	req := attachVideoRequest{VideoURL: videoURL}
	return c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/exercises/%d", id), req, nil)
}

// DeleteExercise removes an exercise
func (c *Client) DeleteExercise(ctx context.Context, id int) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/exercises/%d", id), nil, nil)
}

// GetExerciseUsers returns who favorited and who saved an exercise
func (c *Client) GetExerciseUsers(ctx context.Context, id int) (domain.ExerciseUsers, error) {
	var resp exerciseUsersResponse
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/exercises/%d/users", id), nil, &resp); err != nil {
		return domain.ExerciseUsers{}, err
	}
	return domain.ExerciseUsers{
		FavoritedBy: mapUsers(resp.FavoritedBy),
		SavedBy:     mapUsers(resp.SavedBy),
	}, nil
}

// SetFavorite adds (POST) or removes (DELETE) the viewer's favorite mark
func (c *Client) SetFavorite(ctx context.Context, id int, favorited bool) error {
	method := http.MethodPost
	if !favorited {
		method = http.MethodDelete
	}
	return c.doRequest(ctx, method, fmt.Sprintf("/favorites/%d", id), nil, nil)
}

// SetSaved adds (POST) or removes (DELETE) the viewer's save mark
func (c *Client) SetSaved(ctx context.Context, id int, saved bool) error {
	method := http.MethodPost
	if !saved {
		method = http.MethodDelete
	}
	return c.doRequest(ctx, method, fmt.Sprintf("/saves/%d", id), nil, nil)
}

// RateExercise submits a 1-5 rating
func (c *Client) RateExercise(ctx context.Context, id int, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	return c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/ratings/%d", id), ratingRequest{Rating: rating}, nil)
}

// GetCollection returns the viewer's combined favorited+saved list
func (c *Client) GetCollection(ctx context.Context) ([]domain.Exercise, error) {
	var dtos []exerciseDTO
	if err := c.doRequest(ctx, http.MethodGet, "/collection", nil, &dtos); err != nil {
		return nil, err
	}
	return mapExercises(dtos), nil
}

// MigrateExercises triggers the server-side migration of local exercise
// data to the cloud store and returns the server's status message
func (c *Client) MigrateExercises(ctx context.Context) (string, error) {
	var resp migrateResponse
	if err := c.doRequest(ctx, http.MethodPost, "/migrate/exercises", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

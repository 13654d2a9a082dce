package api

import "github.com/kwhalen/repbook/internal/domain"

// Wire types for the exercise server's JSON surface

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       int    `json:"user_id,omitempty"`
}

type exerciseDTO struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Difficulty    int     `json:"difficulty"`
	IsPublic      bool    `json:"is_public"`
	OwnerID       int     `json:"owner_id"`
	FavoriteCount int     `json:"favorite_count"`
	SaveCount     int     `json:"save_count"`
	HasFavorited  bool    `json:"user_has_favorited"`
	HasSaved      bool    `json:"user_has_saved"`
	AverageRating float64 `json:"average_rating"`
	VideoURL      string  `json:"video_url,omitempty"`
}

type exerciseDraftRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty"`
	IsPublic    bool   `json:"is_public"`
}

type attachVideoRequest struct {
	VideoURL string `json:"video_url"`
}

type ratingRequest struct {
	Rating int `json:"rating"`
}

type userDTO struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type exerciseUsersResponse struct {
	FavoritedBy []userDTO `json:"favorited_by"`
	SavedBy     []userDTO `json:"saved_by"`
}

type migrateResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// mapExercise converts a wire exercise to the domain type
func mapExercise(d exerciseDTO) domain.Exercise {
	return domain.Exercise{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Difficulty:    d.Difficulty,
		IsPublic:      d.IsPublic,
		OwnerID:       d.OwnerID,
		FavoriteCount: d.FavoriteCount,
		SaveCount:     d.SaveCount,
		HasFavorited:  d.HasFavorited,
		HasSaved:      d.HasSaved,
		AverageRating: d.AverageRating,
		VideoURL:      d.VideoURL,
	}
}

// mapExercises converts a wire exercise list to domain types
func mapExercises(dtos []exerciseDTO) []domain.Exercise {
	exercises := make([]domain.Exercise, len(dtos))
	for i, d := range dtos {
		exercises[i] = mapExercise(d)
	}
	return exercises
}

// mapUsers converts a wire user list to domain types
func mapUsers(dtos []userDTO) []domain.User {
	users := make([]domain.User, len(dtos))
	for i, d := range dtos {
		users[i] = domain.User{ID: d.ID, Username: d.Username}
	}
	return users
}

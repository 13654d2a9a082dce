package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/kwhalen/repbook/internal/domain"
	"github.com/kwhalen/repbook/internal/log"
	"github.com/stretchr/testify/require"
)

// staticToken is a fixed TokenSource for tests
type staticToken string

func (s staticToken) AccessToken() string { return string(s) }

// fakeServer is an in-memory exercise server covering the endpoints the
// client talks to
type fakeServer struct {
	mu        sync.Mutex
	nextID    int
	exercises map[int]exerciseDTO
	requests  []string // "METHOD path" in arrival order
	wantToken string
}

func newFakeServer() *fakeServer {
	return &fakeServer{nextID: 1, exercises: map[int]exerciseDTO{}}
}

func (f *fakeServer) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(f.record)

	r.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}).Methods(http.MethodPost)

	r.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(errorResponse{Detail: "bad credentials"})
			return
		}
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "acc", RefreshToken: "ref", UserID: 7})
	}).Methods(http.MethodPost)

	r.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.RefreshToken != "ref" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "acc2", RefreshToken: "ref2"})
	}).Methods(http.MethodPost)

	r.HandleFunc("/exercises/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := make([]exerciseDTO, 0, len(f.exercises))
		for _, dto := range f.exercises {
			out = append(out, dto)
		}
		json.NewEncoder(w).Encode(out)
	}).Methods(http.MethodGet)

	r.HandleFunc("/exercises/", func(w http.ResponseWriter, r *http.Request) {
		var req exerciseDraftRequest
		json.NewDecoder(r.Body).Decode(&req)

		f.mu.Lock()
		dto := exerciseDTO{
			ID:          f.nextID,
			Name:        req.Name,
			Description: req.Description,
			Difficulty:  req.Difficulty,
			IsPublic:    req.IsPublic,
		}
		f.exercises[f.nextID] = dto
		f.nextID++
		f.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto)
	}).Methods(http.MethodPost)

	r.HandleFunc("/exercises/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(mux.Vars(r)["id"])
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.exercises[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method == http.MethodDelete {
			delete(f.exercises, id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		dto := f.exercises[id]
		if v, ok := req["name"].(string); ok {
			dto.Name = v
		}
		if v, ok := req["video_url"].(string); ok {
			dto.VideoURL = v
		}
		f.exercises[id] = dto
		json.NewEncoder(w).Encode(dto)
	}).Methods(http.MethodPut, http.MethodDelete)

	r.HandleFunc("/exercises/{id}/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(exerciseUsersResponse{
			FavoritedBy: []userDTO{{ID: 1, Username: "ana"}},
			SavedBy:     []userDTO{{ID: 2, Username: "ben"}, {ID: 3, Username: "cam"}},
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/favorites/{id}", okHandler).Methods(http.MethodPost, http.MethodDelete)
	r.HandleFunc("/saves/{id}", okHandler).Methods(http.MethodPost, http.MethodDelete)
	r.HandleFunc("/ratings/{id}", okHandler).Methods(http.MethodPost)

	r.HandleFunc("/collection", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]exerciseDTO{
			{ID: 9, Name: "Pull Up", HasSaved: true},
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/migrate/exercises", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(migrateResponse{Message: "migrated 4 exercises"})
	}).Methods(http.MethodPost)

	return r
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// record notes every request and enforces the bearer token when one is expected
func (f *fakeServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		want := f.wantToken
		f.mu.Unlock()

		if want != "" && r.Header.Get("Authorization") != "Bearer "+want {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeServer) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.requests))
	copy(out, f.requests)
	return out
}

func newTestClient(t *testing.T, f *fakeServer, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(f.router())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, staticToken(token), log.NullLogger())
}

func TestLoginReturnsTokenPair(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	session, err := c.Login(context.Background(), "drew", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "acc", session.AccessToken)
	require.Equal(t, "ref", session.RefreshToken)
}

func TestLoginRejectedMapsToErrAuthFailed(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	_, err := c.Login(context.Background(), "drew", "wrong")
	require.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestRefreshSessionRejectsPartialPair(t *testing.T) {
	mu := http.NewServeMux()
	mu.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		// Access token only; the client must not accept half a pair
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "acc"})
	})
	srv := httptest.NewServer(mu)
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), log.NullLogger())
	_, err := c.RefreshSession(context.Background(), "ref")
	require.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	f := newFakeServer()
	f.wantToken = "secret-token"
	c := newTestClient(t, f, "secret-token")

	_, err := c.ListExercises(context.Background())
	require.NoError(t, err)

	// Wrong token is rejected by the fake
	bad := newTestClient(t, f, "other")
	_, err = bad.ListExercises(context.Background())
	require.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestCreateThenList(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	created, err := c.CreateExercise(context.Background(), domain.ExerciseDraft{
		Name:        "Goblet Squat",
		Description: "Front-loaded squat",
		Difficulty:  4,
		IsPublic:    true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.Equal(t, "Goblet Squat", created.Name)

	list, err := c.ListExercises(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].IsPublic)
}

func TestDeleteMissingExerciseIsNotFound(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	err := c.DeleteExercise(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttachVideoSendsPartialUpdate(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	created, err := c.CreateExercise(context.Background(), domain.ExerciseDraft{Name: "Row", Difficulty: 3})
	require.NoError(t, err)

	url := "https://cdn.example.com/videos/exercise_1/abc_row.mp4"
	require.NoError(t, c.AttachVideo(context.Background(), created.ID, url))

	f.mu.Lock()
	dto := f.exercises[created.ID]
	f.mu.Unlock()
	require.Equal(t, url, dto.VideoURL)
	require.Equal(t, "Row", dto.Name)
}

func TestToggleIssuesSingleRequest(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	require.NoError(t, c.SetFavorite(context.Background(), 5, true))
	require.NoError(t, c.SetFavorite(context.Background(), 5, false))
	require.NoError(t, c.SetSaved(context.Background(), 5, true))

	require.Equal(t, []string{
		"POST /favorites/5",
		"DELETE /favorites/5",
		"POST /saves/5",
	}, f.seen())
}

func TestRateExerciseValidatesRange(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	require.Error(t, c.RateExercise(context.Background(), 5, 0))
	require.Error(t, c.RateExercise(context.Background(), 5, 6))
	require.Empty(t, f.seen())

	require.NoError(t, c.RateExercise(context.Background(), 5, 4))
	require.Equal(t, []string{"POST /ratings/5"}, f.seen())
}

func TestGetExerciseUsers(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	users, err := c.GetExerciseUsers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, users.FavoritedBy, 1)
	require.Equal(t, "ana", users.FavoritedBy[0].Username)
	require.Len(t, users.SavedBy, 2)
}

func TestGetCollection(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	got, err := c.GetCollection(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].HasSaved)
}

func TestMigrateExercises(t *testing.T) {
	f := newFakeServer()
	c := newTestClient(t, f, "")

	msg, err := c.MigrateExercises(context.Background())
	require.NoError(t, err)
	require.Equal(t, "migrated 4 exercises", msg)
}

func TestUnreachableServer(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", staticToken(""), log.NullLogger())
	_, err := c.ListExercises(context.Background())
	require.ErrorIs(t, err, domain.ErrServerUnreachable)
}

func TestErrorDetailSurfaced(t *testing.T) {
	mu := http.NewServeMux()
	mu.HandleFunc("/exercises/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(errorResponse{Detail: "difficulty must be positive"})
	})
	srv := httptest.NewServer(mu)
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), log.NullLogger())
	_, err := c.CreateExercise(context.Background(), domain.ExerciseDraft{Name: "X", Difficulty: -1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "difficulty must be positive")
}

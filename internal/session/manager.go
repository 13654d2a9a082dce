// Package session owns the client's authentication lifecycle: the in-memory
// token pair, its durable persistence, and the login/logout/refresh
// transitions. All other layers read credentials through the Manager.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kwhalen/repbook/internal/domain"
)

// Identity is display-only information decoded from the access token.
// The token is NOT verified client-side; expiry is only ever discovered
// when a request fails.
type Identity struct {
	UserID    string
	ExpiresAt time.Time
}

// Manager holds the current session and applies the three transitions:
// login, logout, refresh. The version stamp resolves the logout/refresh
// race: a refresh that lands after the session changed is discarded rather
// than resurrecting stale tokens.
type Manager struct {
	auth   domain.AuthRepository
	store  domain.SessionStore
	logger *slog.Logger

	mu      sync.Mutex
	session domain.Session
	version uint64
}

// NewManager creates a session manager backed by the given store
func NewManager(auth domain.AuthRepository, store domain.SessionStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		auth:   auth,
		store:  store,
		logger: logger,
	}
}

// SetAuth installs the auth backend. The API client reads its bearer token
// from the manager, so the two are constructed before either is complete;
// call this once during wiring, before any transition runs.
func (m *Manager) SetAuth(auth domain.AuthRepository) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auth = auth
}

// Restore loads the persisted session at startup
func (m *Manager) Restore() error {
	session, err := m.store.Load()
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.session = session
	m.version++
	m.mu.Unlock()

	if session.IsAuthenticated() {
		m.logger.Info("restored persisted session")
	}
	return nil
}

// IsAuthenticated reports whether a token pair is held
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.IsAuthenticated()
}

// AccessToken implements domain.TokenSource for the HTTP layer
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.AccessToken
}

// Register creates a new account. The user still has to log in afterwards.
func (m *Manager) Register(ctx context.Context, username, password string) error {
	return m.auth.Register(ctx, username, password)
}

// Login exchanges credentials for a token pair and persists it
func (m *Manager) Login(ctx context.Context, username, password string) error {
	session, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.session = session
	m.version++
	m.mu.Unlock()

	if err := m.store.Save(session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.logger.Info("logged in", "user", username)
	return nil
}

// Logout clears the session in memory and in the store
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.session = domain.Session{}
	m.version++
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	m.logger.Info("logged out")
	return nil
}

// Refresh exchanges the stored refresh token for a new pair. With no stored
// refresh token it forces a logout without issuing a network call. Any
// failure also forces a logout. A refresh that completes after the session
// was replaced or cleared is discarded.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	refreshToken := m.session.RefreshToken
	issuedAt := m.version
	m.mu.Unlock()

	if refreshToken == "" {
		if err := m.Logout(); err != nil {
			m.logger.Warn("logout after missing refresh token failed", "error", err)
		}
		return domain.ErrNoSession
	}

	session, err := m.auth.RefreshSession(ctx, refreshToken)
	if err != nil {
		m.logger.Warn("token refresh failed", "error", err)
		if logoutErr := m.Logout(); logoutErr != nil {
			m.logger.Warn("logout after failed refresh failed", "error", logoutErr)
		}
		return fmt.Errorf("token refresh: %w", err)
	}

	m.mu.Lock()
	if m.version != issuedAt {
		// Session changed while the refresh was in flight (logout or a
		// second login). Discard the result instead of resurrecting it.
		m.mu.Unlock()
		m.logger.Info("discarding refresh result for stale session")
		return nil
	}
	m.session = session
	m.version++
	m.mu.Unlock()

	if err := m.store.Save(session); err != nil {
		return fmt.Errorf("failed to persist refreshed session: %w", err)
	}

	m.logger.Info("session refreshed")
	return nil
}

// Identity decodes the current access token's claims without verification,
// purely for display. Returns false when no token is held or it does not
// parse as a JWT.
func (m *Manager) Identity() (Identity, bool) {
	m.mu.Lock()
	token := m.session.AccessToken
	m.mu.Unlock()

	if token == "" {
		return Identity{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Identity{}, false
	}

	var id Identity
	if sub, err := claims.GetSubject(); err == nil {
		id.UserID = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, true
}

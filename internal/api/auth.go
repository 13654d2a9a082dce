package api

import (
	"context"
	"net/http"

	"github.com/kwhalen/repbook/internal/domain"
)

// Register creates a new account from a username and password
func (c *Client) Register(ctx context.Context, username, password string) error {
	req := registerRequest{Username: username, Password: password}
	return c.doRequest(ctx, http.MethodPost, "/auth/register", req, nil)
}

// Login exchanges credentials for a token pair
func (c *Client) Login(ctx context.Context, username, password string) (domain.Session, error) {
	req := registerRequest{Username: username, Password: password}

	var resp tokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// RefreshSession exchanges a refresh token for a new token pair
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (domain.Session, error) {
	req := refreshRequest{RefreshToken: refreshToken}

	var resp tokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/refresh", req, &resp); err != nil {
		return domain.Session{}, err
	}

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		// A malformed pair counts as a failed refresh
		return domain.Session{}, domain.ErrAuthFailed
	}

	return domain.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

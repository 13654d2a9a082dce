package domain

// Session holds the current token pair. Both tokens are set together on
// login/refresh and cleared together on logout; the pair is never split.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// IsAuthenticated reports whether the session carries credentials
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// TokenSource supplies the current access token to the HTTP layer.
// An empty string means no credential is attached to the request.
type TokenSource interface {
	AccessToken() string
}

// Package session holds the authentication state of one interactive
// console session.
package session

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnauthenticated is returned when a privileged operation is attempted
// before a token is set.
var ErrUnauthenticated = errors.New("token not set, use 'token <your_token>' first")

// Session carries the bearer token for the lifetime of one console run.
// It is created without a token and mutated in place by SetToken; it is
// never persisted. Only the single session loop goroutine touches it.
type Session struct {
	baseURL string
	token   string
}

// New creates an unauthenticated session bound to the API base URL.
func New(baseURL string) *Session {
	return &Session{baseURL: baseURL}
}

// BaseURL returns the API base URL this session talks to.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// SetToken stores the bearer token. Setting the same token again is a no-op.
func (s *Session) SetToken(token string) {
	s.token = token
}

// IsAuthenticated reports whether a non-empty token is present.
func (s *Session) IsAuthenticated() bool {
	return s.token != ""
}

// AuthHeaderValue returns the formatted Authorization header value, or
// ErrUnauthenticated when no token is set.
func (s *Session) AuthHeaderValue() (string, error) {
	if s.token == "" {
		return "", ErrUnauthenticated
	}
	return fmt.Sprintf("Bearer %s", s.token), nil
}

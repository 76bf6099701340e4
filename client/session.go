package client

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claim names that may carry the acting username, in precedence order.
var usernameClaims = []string{"username", "user", "sub"}

// UsernameFromToken extracts the username claim from a bearer credential.
// The signature is NOT verified — the server did that when it minted the
// token, and this client never holds the signing secret. The result is
// display/lookup material only, not a security boundary.
func UsernameFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", err
	}
	for _, name := range usernameClaims {
		if v, ok := claims[name].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", errors.New("no username claim")
}

// Session caches the identity resolved from the current credential so other
// views can reuse it without re-decoding. Advisory only.
type Session struct {
	Username string
}

// NewSession resolves the identity behind a token. A missing or malformed
// token yields a session with no username, never an error the caller has
// to special-case.
func NewSession(token string) *Session {
	if token == "" {
		return &Session{}
	}
	name, err := UsernameFromToken(token)
	if err != nil {
		return &Session{}
	}
	return &Session{Username: name}
}

// PrivilegedIn reports whether this session's identity appears in the
// directory with the superuser flag set. Exact username match only.
func (s *Session) PrivilegedIn(users []User) bool {
	if s.Username == "" {
		return false
	}
	for _, u := range users {
		if u.Username == s.Username {
			return u.IsSuperuser
		}
	}
	return false
}

// Privileged fetches the directory and resolves privilege. Every failure
// path — empty identity, fetch error, no matching entry — resolves to
// false (fail-closed), never to an error.
func (s *Session) Privileged(ctx context.Context, gw Gateway) bool {
	if s.Username == "" {
		return false
	}
	users, err := gw.Users(ctx)
	if err != nil {
		return false
	}
	return s.PrivilegedIn(users)
}

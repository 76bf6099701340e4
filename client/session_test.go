package client

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestUsernameFromToken(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    string
		wantErr bool
	}{
		{name: "username claim wins", claims: jwt.MapClaims{"username": "a", "user": "b", "sub": "c"}, want: "a"},
		{name: "user claim second", claims: jwt.MapClaims{"user": "b", "sub": "c"}, want: "b"},
		{name: "sub claim last", claims: jwt.MapClaims{"sub": "c"}, want: "c"},
		{name: "empty username falls through", claims: jwt.MapClaims{"username": "", "user": "b"}, want: "b"},
		{name: "no identity claim", claims: jwt.MapClaims{"role": "staff"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UsernameFromToken(signedToken(t, tt.claims))
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("username = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUsernameFromTokenMalformed(t *testing.T) {
	if _, err := UsernameFromToken("not-a-jwt"); err == nil {
		t.Fatal("want error for malformed token")
	}
}

func TestNewSessionFailClosed(t *testing.T) {
	if s := NewSession(""); s.Username != "" {
		t.Errorf("empty token resolved to %q", s.Username)
	}
	if s := NewSession("garbage"); s.Username != "" {
		t.Errorf("malformed token resolved to %q", s.Username)
	}
}

func TestSessionPrivilegedIn(t *testing.T) {
	directory := []User{
		{Username: "a", IsSuperuser: true},
		{Username: "b", IsSuperuser: false},
	}
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{name: "superuser match", username: "a", want: true},
		{name: "plain user match", username: "b", want: false},
		{name: "no match", username: "z", want: false},
		{name: "unresolved identity", username: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{Username: tt.username}
			if got := s.PrivilegedIn(directory); got != tt.want {
				t.Errorf("PrivilegedIn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionPrivilegedFetchFailure(t *testing.T) {
	gw := &fakeGateway{usersErr: errGateway}
	s := &Session{Username: "a"}
	if s.Privileged(context.Background(), gw) {
		t.Fatal("directory fetch failure must resolve to no privilege")
	}
}

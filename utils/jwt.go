package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vaishnavisherala/RestaurantSystem/entity"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// Claims carried by both access and refresh tokens.
// username/email mirror what the dashboard reads out of the token.
type Claims struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func GenerateToken(u *entity.User, tokenType, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Username:  u.Username,
		Email:     u.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateTokenPair mints the access+refresh pair returned by /api/token/.
func GenerateTokenPair(u *entity.User, secret string, accessTTL, refreshTTL time.Duration) (access, refresh string, err error) {
	access, err = GenerateToken(u, TokenAccess, secret, accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = GenerateToken(u, TokenRefresh, secret, refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

package services

import (
	"errors"
	"strings"
	"time"

	"github.com/vaishnavisherala/RestaurantSystem/entity"
	"github.com/vaishnavisherala/RestaurantSystem/repository"
	"github.com/vaishnavisherala/RestaurantSystem/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and the token pair endpoints.
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   repo,
		jwtSecret:  secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Signup creates a regular (non-privileged) user.
func (s *AuthService) Signup(username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || password == "" {
		return nil, errors.New("username and password required")
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login accepts username or email and mints the access+refresh pair.
func (s *AuthService) Login(username, email, password string) (*TokenPair, *entity.User, error) {
	var (
		user *entity.User
		err  error
	)
	switch {
	case username != "":
		user, err = s.userRepo.FindByUsername(strings.TrimSpace(username))
	case email != "":
		user, err = s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	default:
		return nil, nil, errors.New("username or email required")
	}
	if err != nil {
		return nil, nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, errors.New("invalid credentials")
	}

	access, refresh, err := utils.GenerateTokenPair(user, s.jwtSecret, s.accessTTL, s.refreshTTL)
	if err != nil {
		return nil, nil, errors.New("cannot generate token")
	}
	return &TokenPair{Access: access, Refresh: refresh}, user, nil
}

// Refresh trades a refresh token for a new access token. Access tokens are
// rejected here even though they parse with the same secret.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := utils.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}
	if claims.TokenType != utils.TokenRefresh {
		return "", errors.New("not a refresh token")
	}

	user, err := s.userRepo.FindByUsername(claims.Username)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}
	return utils.GenerateToken(user, utils.TokenAccess, s.jwtSecret, s.accessTTL)
}

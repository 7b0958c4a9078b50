package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"ceremonia/internal/auth"
	"ceremonia/internal/model"
	"ceremonia/internal/repository"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegisterParams are the fields accepted at registration.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Company  string
}

// AuthService handles registration, login and token issuance.
type AuthService interface {
	Register(ctx context.Context, p RegisterParams) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	TokenTTL() time.Duration
}

type authService struct {
	users  repository.UserRepository
	secret string
	ttl    time.Duration
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService with a scoped logger.
func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		users:  users,
		secret: secret,
		ttl:    ttl,
		logger: logger.With().Str("service", "AuthService").Logger(),
	}
}

// Register creates a new account on the free plan and issues a token.
func (s *authService) Register(ctx context.Context, p RegisterParams) (*model.User, string, error) {
	existing, err := s.users.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	nowTime := time.Now().UTC()
	user := &model.User{
		Email:     p.Email,
		Name:      p.Name,
		Password:  string(hash),
		Plan:      model.PlanFree,
		Phone:     p.Phone,
		Company:   p.Company,
		CreatedAt: nowTime,
		LastLogin: nowTime,
		Status:    "active",
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := auth.IssueToken(s.secret, user, s.ttl)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", user.ID).Msg("Failed to issue token")
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and issues a fresh token.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, "", err
	}
	// GetByEmail returned a copy taken before the touch; reflect the new
	// login time on the user we hand back.
	user.LastLogin = time.Now().UTC()

	token, err := auth.IssueToken(s.secret, user, s.ttl)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", user.ID).Msg("Failed to issue token")
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.ttl
}

package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsdesk/news-backend/internal/api/metrics"
	"github.com/newsdesk/news-backend/internal/core/domain"
	"github.com/newsdesk/news-backend/internal/core/ports"
)

const defaultTokenTTL = 5 * time.Minute

// LoginThrottle abstracts the brute-force guard (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// TokenConfig holds the parameters of minted access tokens.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService verifies credentials against the user repository and mints
// short-lived HMAC-signed tokens.
type AuthService struct {
	users    ports.UserRepository
	throttle LoginThrottle
	token    TokenConfig
	logger   zerolog.Logger
}

// NewAuthService builds an AuthService. throttle may be nil, in which case
// no brute-force guard is applied.
func NewAuthService(users ports.UserRepository, throttle LoginThrottle, token TokenConfig, logger zerolog.Logger) *AuthService {
	if token.TTL <= 0 {
		token.TTL = defaultTokenTTL
	}
	return &AuthService{users: users, throttle: throttle, token: token, logger: logger}
}

// Login authenticates a username/password pair and returns a signed token.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("login throttle check failed, proceeding")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", domain.ErrTooManyLoginAttempts
		}
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", user.Role()).Msg("user logged in")
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"jti":                  uuid.NewString(),
		"sub":                  strconv.Itoa(user.ID),
		domain.ClaimUniqueName: user.Username,
		domain.ClaimRole:       user.Role(),
		"iss":                  s.token.Issuer,
		"aud":                  s.token.Audience,
		"iat":                  now.Unix(),
		"exp":                  now.Add(s.token.TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return t.SignedString([]byte(s.token.Secret))
}

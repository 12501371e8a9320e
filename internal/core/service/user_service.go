package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsdesk/news-backend/internal/api/metrics"
	"github.com/newsdesk/news-backend/internal/core/domain"
	"github.com/newsdesk/news-backend/internal/core/ports"
)

// UserService implements account self-service.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// UpdatePassword verifies the caller's current password, then stores a
// bcrypt hash of the new one. The admin flag is reset from the caller's
// token role at the same time.
func (s *UserService) UpdatePassword(ctx context.Context, ident domain.Identity, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, ident.UserID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, ident.UserID, string(hash), ident.IsAdmin()); err != nil {
		return err
	}

	metrics.PasswordUpdatesTotal.Inc()
	s.logger.Info().Int("user_id", ident.UserID).Msg("password updated")
	return nil
}

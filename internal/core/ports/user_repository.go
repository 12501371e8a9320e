package ports

import (
	"context"

	"github.com/newsdesk/news-backend/internal/core/domain"
)

// UserRepository defines persistence operations for the credential store.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdatePassword replaces the stored hash and admin flag of a user.
	UpdatePassword(ctx context.Context, id int, passwordHash string, isAdmin bool) error
}

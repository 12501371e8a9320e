package ports

import (
	"context"

	"github.com/newsdesk/news-backend/internal/core/domain"
)

// UserService defines account self-service operations.
type UserService interface {
	// UpdatePassword rehashes and stores a new password for the caller.
	// The current password must verify against the stored hash first.
	UpdatePassword(ctx context.Context, ident domain.Identity, currentPassword, newPassword string) error
}

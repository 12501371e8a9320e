package ports

import "context"

// AuthService verifies credentials and mints bearer tokens.
type AuthService interface {
	// Login returns a signed token for the user on success.
	Login(ctx context.Context, username, password string) (string, error)
}

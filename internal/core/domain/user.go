package domain

import "errors"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrTooManyLoginAttempts = errors.New("too many login attempts")

// User models an account in the credential store.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
}

// Role returns the token role derived from the admin flag.
func (u *User) Role() string {
	return RoleFor(u.IsAdmin)
}

// RoleFor maps the stored admin flag to a token role.
func RoleFor(isAdmin bool) string {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}

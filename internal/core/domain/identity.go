package domain

// Private claim names carried in the access token, shared between the
// minting side (auth service) and the verifying side (auth middleware).
const (
	ClaimUniqueName = "unique_name"
	ClaimRole       = "role"
)

// Identity is the verified caller identity extracted from a bearer token.
// Handlers receive it from the request context and pass it to services
// explicitly; nothing below the transport layer reads ambient state.
type Identity struct {
	UserID   int
	Username string
	Role     string
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

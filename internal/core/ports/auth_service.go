package ports

import (
	"context"

	"github.com/aiauto/dashboard-api/internal/core/domain"
)

// LoginInput carries the credentials submitted by the login form. Password and
// Role are optional: persisted accounts carry no password, and the role is a
// hint from the role-selection screen.
type LoginInput struct {
	Email    string
	Password string
	Role     string
}

// Profile is the sanitized public view of an identity returned to the client.
// It never carries a password; ID is present only for persisted accounts.
type Profile struct {
	ID    string      `json:"id,omitempty"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// Session is the result of a successful login.
type Session struct {
	Token   string
	Profile Profile
}

// AuthService resolves credentials and issues session tokens.
type AuthService interface {
	// Login runs the full resolve-then-issue sequence.
	Login(ctx context.Context, input LoginInput) (*Session, error)
	// Resolve determines the identity for the given credentials without
	// minting a token.
	Resolve(ctx context.Context, input LoginInput) (*domain.Identity, error)
}

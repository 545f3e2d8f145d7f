package ports

import (
	"context"

	"github.com/aiauto/dashboard-api/internal/core/domain"
)

// SignupInput carries the fields of a signup or direct-create request.
type SignupInput struct {
	Name   string
	Email  string
	Role   string // optional, defaults to Client
	Status string // optional, defaults to Active (direct create only)
}

// SignupResult distinguishes a fresh insert from an idempotent replay.
type SignupResult struct {
	User *domain.User
	// Created is false when an account with the same email already existed
	// and was returned unchanged.
	Created bool
}

// PatchInput mirrors UserPatch at the use-case boundary.
type PatchInput struct {
	Name   *string
	Email  *string
	Role   *string
	Status *string
}

// UserService defines the user-directory use cases.
type UserService interface {
	// Signup creates an account, or returns the existing one when the email
	// is already registered.
	Signup(ctx context.Context, input SignupInput) (*SignupResult, error)
	// ListAll returns every persisted account.
	ListAll(ctx context.Context) ([]*domain.User, error)
	// CreateAndNotify always inserts and then publishes a newUser event,
	// best-effort.
	CreateAndNotify(ctx context.Context, input SignupInput) (*domain.User, error)
	// PatchUser applies a partial update by identifier.
	PatchUser(ctx context.Context, id string, input PatchInput) (*domain.User, error)
}

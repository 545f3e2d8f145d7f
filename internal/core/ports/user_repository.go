package ports

import (
	"context"

	"github.com/aiauto/dashboard-api/internal/core/domain"
)

// UserPatch carries the optional fields of a partial update. Nil means
// "leave unchanged".
type UserPatch struct {
	Name   *string
	Email  *string
	Role   *domain.Role
	Status *domain.UserStatus
}

// UserRepository defines persistence operations for dashboard accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert persists a new user and returns it with its assigned identifier.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// List returns every persisted user in store order.
	List(ctx context.Context) ([]*domain.User, error)
	// Patch applies the non-nil fields of patch to the user with the given
	// identifier and returns the updated record. Returns ErrUserNotFound when
	// no such record exists.
	Patch(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
}

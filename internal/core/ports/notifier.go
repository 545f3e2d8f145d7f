package ports

import (
	"context"

	"github.com/aiauto/dashboard-api/internal/core/domain"
)

// UserNotifier publishes real-time events about directory changes. Publishing
// is best-effort; callers must not fail their own operation on error.
type UserNotifier interface {
	PublishNewUser(ctx context.Context, user *domain.User) error
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aiauto/dashboard-api/internal/api/metrics"
	"github.com/aiauto/dashboard-api/internal/core/domain"
)

// NewUserChannel is the pub/sub channel dashboard frontends subscribe to for
// live directory updates.
const NewUserChannel = "users:new"

// userEvent is the wire envelope for directory events.
type userEvent struct {
	Event string       `json:"event"`
	User  *domain.User `json:"user"`
}

// Notifier publishes directory events over Redis pub/sub.
type Notifier struct {
	client *redis.Client
}

// NewNotifier creates a Notifier wrapping the given Redis client.
func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

// PublishNewUser emits a newUser event carrying the created record. Delivery
// is at-most-once: subscribers absent at publish time miss the event.
func (n *Notifier) PublishNewUser(ctx context.Context, user *domain.User) error {
	payload, err := json.Marshal(userEvent{Event: "newUser", User: user})
	if err != nil {
		metrics.UserEventsPublishedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("marshal newUser event: %w", err)
	}

	if err := n.client.Publish(ctx, NewUserChannel, payload).Err(); err != nil {
		metrics.UserEventsPublishedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("publish newUser event: %w", err)
	}

	metrics.UserEventsPublishedTotal.WithLabelValues("ok").Inc()
	return nil
}

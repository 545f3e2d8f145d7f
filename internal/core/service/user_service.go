package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aiauto/dashboard-api/internal/core/domain"
	"github.com/aiauto/dashboard-api/internal/core/ports"
)

// notifyTimeout bounds the detached newUser publish so a stuck broker cannot
// leak goroutines indefinitely.
const notifyTimeout = 5 * time.Second

// UserService implements the user-directory use cases.
type UserService struct {
	repo     ports.UserRepository
	notifier ports.UserNotifier
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, notifier ports.UserNotifier, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, notifier: notifier, logger: logger}
}

// Signup creates an account with status Active. When the email is already
// registered the existing record is returned unchanged — signup is idempotent
// by email, not an error. Two signups racing on the same email can both pass
// the existence check; that window is accepted.
func (s *UserService) Signup(ctx context.Context, input ports.SignupInput) (*ports.SignupResult, error) {
	user, err := s.buildUser(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err == nil {
		return &ports.SignupResult{User: existing, Created: false}, nil
	}
	if err != domain.ErrUserNotFound {
		return nil, fmt.Errorf("signup: %w", err)
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.logger.Info().
		Str("name", created.Name).
		Str("role", string(created.Role)).
		Msg("new user signed up")

	return &ports.SignupResult{User: created, Created: true}, nil
}

// ListAll returns every persisted account in store order.
func (s *UserService) ListAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// CreateAndNotify inserts unconditionally (no dedupe by email) and then
// publishes a newUser event carrying the created record. The publish runs
// detached from the request: its failure is logged and discarded, never
// surfaced to the caller.
func (s *UserService) CreateAndNotify(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	user, err := s.buildUser(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	go func(u domain.User) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.PublishNewUser(ctx, &u); err != nil {
			s.logger.Warn().Err(err).Str("user_id", u.ID).Msg("newUser publish failed")
			return
		}
		s.logger.Debug().Str("user_id", u.ID).Msg("newUser event published")
	}(*created)

	return created, nil
}

// PatchUser applies the provided fields to the record with the given id and
// returns the updated record.
func (s *UserService) PatchUser(ctx context.Context, id string, input ports.PatchInput) (*domain.User, error) {
	var patch ports.UserPatch

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrMissingInput
		}
		patch.Name = input.Name
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, domain.ErrMissingInput
		}
		patch.Email = input.Email
	}
	if input.Role != nil {
		role, ok := domain.NormalizeRole(*input.Role)
		if !ok {
			return nil, domain.ErrInvalidRole
		}
		patch.Role = &role
	}
	if input.Status != nil {
		status, err := parseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &status
	}

	updated, err := s.repo.Patch(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// buildUser validates the common signup fields and assembles a new record.
func (s *UserService) buildUser(input ports.SignupInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, domain.ErrMissingInput
	}

	role := domain.RoleClient
	if input.Role != "" {
		normalized, ok := domain.NormalizeRole(input.Role)
		if !ok {
			return nil, domain.ErrInvalidRole
		}
		role = normalized
	}

	status := domain.StatusActive
	if input.Status != "" {
		parsed, err := parseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	now := time.Now().UTC()
	return &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Role:      role,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func parseStatus(raw string) (domain.UserStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active":
		return domain.StatusActive, nil
	case "inactive":
		return domain.StatusInactive, nil
	default:
		return "", domain.ErrInvalidStatus
	}
}

package service

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/aiauto/dashboard-api/internal/core/domain"
	"github.com/aiauto/dashboard-api/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService resolves login credentials against the static demo table and
// the persisted user store, and issues session tokens.
type AuthService struct {
	table     DemoTable
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(table DemoTable, repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		table:     table,
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Resolve determines the identity for a login attempt. The demo table is
// consulted first and owns its emails outright: a wrong password for a demo
// address fails here rather than falling through to the store. The requested
// role is enforced only on the persisted path — the role screen already picked
// the demo account, so the hint adds nothing there.
func (s *AuthService) Resolve(ctx context.Context, input ports.LoginInput) (*domain.Identity, error) {
	if input.Email == "" {
		return nil, domain.ErrMissingInput
	}

	if acct, ok := s.table.Lookup(input.Email); ok {
		if input.Password != acct.Password {
			return nil, domain.ErrInvalidCredentials
		}
		return &domain.Identity{
			Name:   acct.Name,
			Email:  acct.Email,
			Role:   acct.Role,
			Source: domain.SourceStatic,
		}, nil
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if input.Role != "" && !domain.RolesEqual(string(user.Role), input.Role) {
		return nil, &domain.RoleMismatchError{Stored: user.Role, Requested: input.Role}
	}

	return &domain.Identity{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Source: domain.SourcePersisted,
	}, nil
}

// Login resolves the credentials and mints a session for the identity.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.Session, error) {
	identity, err := s.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(identity)
	if err != nil {
		return nil, err
	}

	profile := ports.Profile{
		Name:  identity.Name,
		Email: identity.Email,
		Role:  identity.Role,
	}
	if identity.Source == domain.SourcePersisted {
		profile.ID = identity.ID
	}

	s.logger.Info().
		Str("email", identity.Email).
		Str("role", string(identity.Role)).
		Str("source", string(identity.Source)).
		Msg("login successful")

	return &ports.Session{Token: token, Profile: profile}, nil
}

// Claims is the session token payload.
type Claims struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) issueToken(identity *domain.Identity) (string, error) {
	subjectID := identity.ID
	if identity.Source == domain.SourceStatic {
		// Demo accounts have no stored identifier; mint a per-login one.
		subjectID = "demo-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	}

	now := time.Now().UTC()
	claims := Claims{
		ID:    subjectID,
		Email: identity.Email,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

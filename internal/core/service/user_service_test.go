package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aiauto/dashboard-api/internal/core/domain"
	"github.com/aiauto/dashboard-api/internal/core/ports"
)

type stubNotifier struct {
	published chan *domain.User
	err       error
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{published: make(chan *domain.User, 8)}
}

func (n *stubNotifier) PublishNewUser(_ context.Context, user *domain.User) error {
	n.published <- user
	return n.err
}

func newUserService(repo *stubUserRepo, notifier ports.UserNotifier) *UserService {
	return NewUserService(repo, notifier, zerolog.Nop())
}

func TestUserService_Signup_Defaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, newStubNotifier())

	result, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Jane", Email: "jane@x.com"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if !result.Created {
		t.Fatalf("expected a fresh record")
	}
	if result.User.Role != domain.RoleClient {
		t.Fatalf("expected default role Client, got %s", result.User.Role)
	}
	if result.User.Status != domain.StatusActive {
		t.Fatalf("expected status Active, got %s", result.User.Status)
	}
	if result.User.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestUserService_Signup_IdempotentByEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, newStubNotifier())

	first, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Jane", Email: "jane@x.com"})
	if err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	second, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Someone Else", Email: "jane@x.com", Role: "Builder"})
	if err != nil {
		t.Fatalf("second signup failed: %v", err)
	}
	if second.Created {
		t.Fatalf("second signup must not create a duplicate")
	}
	if second.User.ID != first.User.ID || second.User.Name != "Jane" {
		t.Fatalf("expected the original record back unchanged, got %+v", second.User)
	}
	if repo.insertCalls != 1 {
		t.Fatalf("expected a single insert, got %d", repo.insertCalls)
	}
}

func TestUserService_Signup_Validation(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubNotifier())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "jane@x.com"}); err != domain.ErrMissingInput {
		t.Fatalf("expected ErrMissingInput for missing name, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Jane"}); err != domain.ErrMissingInput {
		t.Fatalf("expected ErrMissingInput for missing email, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Jane", Email: "jane@x.com", Role: "warlord"}); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Signup_RoleAlias(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubNotifier())

	result, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Omar", Email: "omar@x.com", Role: "project_site"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.User.Role != domain.RoleSiteManager {
		t.Fatalf("expected alias to normalize to Site Manager, got %s", result.User.Role)
	}
}

func TestUserService_CreateAndNotify_Publishes(t *testing.T) {
	repo := newStubUserRepo()
	notifier := newStubNotifier()
	svc := newUserService(repo, notifier)

	created, err := svc.CreateAndNotify(context.Background(), ports.SignupInput{Name: "Jane", Email: "jane@x.com", Role: "Builder"})
	if err != nil {
		t.Fatalf("CreateAndNotify returned error: %v", err)
	}

	select {
	case published := <-notifier.published:
		if published.ID != created.ID || published.Email != "jane@x.com" {
			t.Fatalf("published payload does not match created record: %+v", published)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("newUser event was never published")
	}
}

func TestUserService_CreateAndNotify_NoDedupe(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, newStubNotifier())

	input := ports.SignupInput{Name: "Jane", Email: "jane@x.com"}
	if _, err := svc.CreateAndNotify(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateAndNotify(context.Background(), input); err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if repo.insertCalls != 2 {
		t.Fatalf("direct create must not dedupe, expected 2 inserts, got %d", repo.insertCalls)
	}
}

func TestUserService_CreateAndNotify_PublishFailureIgnored(t *testing.T) {
	repo := newStubUserRepo()
	notifier := newStubNotifier()
	notifier.err = errors.New("broker down")
	svc := newUserService(repo, notifier)

	created, err := svc.CreateAndNotify(context.Background(), ports.SignupInput{Name: "Jane", Email: "jane@x.com"})
	if err != nil {
		t.Fatalf("publish failure must not fail the create: %v", err)
	}
	if created == nil || created.ID == "" {
		t.Fatalf("expected a created record, got %+v", created)
	}
	// Drain so the goroutine finishes before the test exits.
	select {
	case <-notifier.published:
	case <-time.After(2 * time.Second):
		t.Fatalf("publish attempt never happened")
	}
}

func TestUserService_PatchUser_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	_, _ = repo.Insert(context.Background(), &domain.User{Name: "Jane", Email: "jane@x.com", Role: domain.RoleClient, Status: domain.StatusActive})
	svc := newUserService(repo, newStubNotifier())

	name := "Janet"
	_, err := svc.PatchUser(context.Background(), "missing-id", ports.PatchInput{Name: &name})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if repo.users["jane@x.com"].Name != "Jane" {
		t.Fatalf("patch of a missing id must not mutate other records")
	}
}

func TestUserService_PatchUser_PartialUpdate(t *testing.T) {
	repo := newStubUserRepo()
	created, _ := repo.Insert(context.Background(), &domain.User{Name: "Jane", Email: "jane@x.com", Role: domain.RoleClient, Status: domain.StatusActive})
	svc := newUserService(repo, newStubNotifier())

	role := "project_site"
	status := "inactive"
	updated, err := svc.PatchUser(context.Background(), created.ID, ports.PatchInput{Role: &role, Status: &status})
	if err != nil {
		t.Fatalf("PatchUser returned error: %v", err)
	}
	if updated.Role != domain.RoleSiteManager || updated.Status != domain.StatusInactive {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.Name != "Jane" {
		t.Fatalf("untouched fields must survive the patch")
	}
}

func TestUserService_PatchUser_InvalidFields(t *testing.T) {
	repo := newStubUserRepo()
	created, _ := repo.Insert(context.Background(), &domain.User{Name: "Jane", Email: "jane@x.com", Role: domain.RoleClient, Status: domain.StatusActive})
	svc := newUserService(repo, newStubNotifier())

	badRole := "warlord"
	if _, err := svc.PatchUser(context.Background(), created.ID, ports.PatchInput{Role: &badRole}); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	empty := ""
	if _, err := svc.PatchUser(context.Background(), created.ID, ports.PatchInput{Email: &empty}); err != domain.ErrMissingInput {
		t.Fatalf("expected ErrMissingInput for empty email, got %v", err)
	}
}

func TestUserService_ListAll(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, newStubNotifier())

	_, _ = svc.Signup(context.Background(), ports.SignupInput{Name: "Jane", Email: "jane@x.com"})
	_, _ = svc.Signup(context.Background(), ports.SignupInput{Name: "Omar", Email: "omar@x.com", Role: "Builder"})

	users, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

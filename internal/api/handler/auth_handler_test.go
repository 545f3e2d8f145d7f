package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aiauto/dashboard-api/internal/core/domain"
	"github.com/aiauto/dashboard-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, input ports.LoginInput) (*ports.Session, error)
}

func (s *stubAuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.Session, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthService) Resolve(ctx context.Context, input ports.LoginInput) (*domain.Identity, error) {
	panic("not used by the handler")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, input ports.LoginInput) (*ports.Session, error) {
			if input.Email != "nadia@example.com" || input.Role != "civil_engineer" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.Session{
				Token: "token123",
				Profile: ports.Profile{
					ID:    "id-1",
					Name:  "Nadia",
					Email: input.Email,
					Role:  domain.RoleCivilEngineer,
				},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"nadia@example.com","role":"civil_engineer"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login successful" || resp["token"] != "token123" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Nadia" || user["role"] != "Civil Engineer" || user["id"] != "id-1" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, hasPassword := user["password"]; hasPassword {
		t.Fatalf("profile must never carry a password")
	}
}

func TestAuthHandler_Login_StaticProfileOmitsID(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _ ports.LoginInput) (*ports.Session, error) {
			return &ports.Session{
				Token:   "token123",
				Profile: ports.Profile{Name: "Admin", Email: "admin@ai-auto.com", Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"admin@ai-auto.com","password":"admin123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user := resp["user"].(map[string]any)
	if _, hasID := user["id"]; hasID {
		t.Fatalf("static profile must omit the id field, got %+v", user)
	}
}

func TestAuthHandler_Login_ErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"missing input", domain.ErrMissingInput, http.StatusBadRequest},
		{"not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"wrong demo password", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"role mismatch", &domain.RoleMismatchError{Stored: domain.RoleCivilEngineer, Requested: "Builder"}, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			handler := NewAuthHandler(&stubAuthService{
				loginFn: func(context.Context, ports.LoginInput) (*ports.Session, error) {
					return nil, tc.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"x@example.com"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := handler.Login(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_RoleMismatchMessage(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.Session, error) {
			return nil, &domain.RoleMismatchError{Stored: domain.RoleCivilEngineer, Requested: "Builder"}
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"x@example.com","role":"Builder"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.Contains(resp["error"], "Civil Engineer") || !strings.Contains(resp["error"], "Builder") {
		t.Fatalf("mismatch message should name both roles, got %q", resp["error"])
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.Session, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aiauto/dashboard-api/internal/api/metrics"
	"github.com/aiauto/dashboard-api/internal/core/domain"
	"github.com/aiauto/dashboard-api/internal/core/ports"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a session token plus the public
// profile.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials; role is the selection from the login screen"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	session, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		metrics.LoginFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		status, msg := loginError(err)
		return c.JSON(status, errorResponse{Error: msg})
	}

	source := "persisted"
	if session.Profile.ID == "" {
		source = "static"
	}
	metrics.LoginsTotal.WithLabelValues(source, string(session.Profile.Role)).Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   session.Token,
		User:    session.Profile,
	})
}

// loginError maps resolver failures to the login endpoint's status contract.
func loginError(err error) (int, string) {
	var mismatch *domain.RoleMismatchError
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		return http.StatusBadRequest, "please provide an email"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.As(err, &mismatch):
		return http.StatusUnauthorized, mismatch.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// failureReason buckets login errors for the failure counter.
func failureReason(err error) string {
	var mismatch *domain.RoleMismatchError
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		return "missing_input"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.As(err, &mismatch):
		return "role_mismatch"
	default:
		return "internal"
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aiauto/dashboard-api/internal/api/metrics"
	"github.com/aiauto/dashboard-api/internal/core/domain"
	"github.com/aiauto/dashboard-api/internal/core/ports"
)

// UserHandler handles the user-directory endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup creates an account, or returns the existing one for an already
// registered email.
//
// @Summary      Sign up a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      200   {object}  userResponse  "Email already registered; existing record returned"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		status, msg := userError(err)
		return c.JSON(status, errorResponse{Error: msg})
	}

	if !result.Created {
		return c.JSON(http.StatusOK, toUserResponse(result.User))
	}

	metrics.UsersCreatedTotal.WithLabelValues("signup").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(result.User))
}

// List returns every persisted user.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		status, msg := userError(err)
		return c.JSON(status, errorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Create inserts a user unconditionally and emits a newUser event on the
// real-time channel.
//
// @Summary      Create a user and broadcast a newUser event
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateAndNotify(c.Request().Context(), ports.SignupInput{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		status, msg := userError(err)
		return c.JSON(status, errorResponse{Error: msg})
	}

	metrics.UsersCreatedTotal.WithLabelValues("direct").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(created))
}

// Patch applies a partial update to the user with the given id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "User identifier"
// @Param        body  body      patchUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/{id} [patch]
func (h *UserHandler) Patch(c echo.Context) error {
	var req patchUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.PatchUser(c.Request().Context(), c.Param("id"), ports.PatchInput{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		status, msg := userError(err)
		return c.JSON(status, errorResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// userError maps directory failures to the endpoints' status contract.
func userError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingInput),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

package handler

import (
	"github.com/aiauto/dashboard-api/internal/core/domain"
	"github.com/aiauto/dashboard-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// Role is the selection made on the login screen; optional.
	Role string `json:"role"`
}

type loginResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    ports.Profile `json:"user"`
}

// --- User directory ---

type signupRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

type createUserRequest struct {
	Name   string `json:"name"  validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// patchUserRequest uses pointers so absent fields are distinguishable from
// explicit empty values.
type patchUserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt: u.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

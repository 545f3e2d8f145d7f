package domain

import (
	"strings"
	"time"
)

// Role is one of the dashboard's fixed set of account roles. The canonical
// stored form is the human label ("Site Manager"), but the login form sends
// internal keys ("project_site"), so comparisons go through NormalizeRole.
type Role string

const (
	RoleAdmin         Role = "Admin"
	RoleBuilder       Role = "Builder"
	RoleCivilEngineer Role = "Civil Engineer"
	RoleSiteManager   Role = "Site Manager"
	RoleClient        Role = "Client"
)

// roleAliases maps lowercased inputs (labels and internal form keys) to the
// canonical role.
var roleAliases = map[string]Role{
	"admin":          RoleAdmin,
	"builder":        RoleBuilder,
	"civil engineer": RoleCivilEngineer,
	"civil_engineer": RoleCivilEngineer,
	"site manager":   RoleSiteManager,
	"project_site":   RoleSiteManager,
	"client":         RoleClient,
	"client/buyer":   RoleClient,
}

// NormalizeRole resolves a raw role string to its canonical Role. The match is
// case-insensitive and accepts both the human label and the internal key used
// by the login form. Returns false for anything outside the enumeration.
func NormalizeRole(raw string) (Role, bool) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(raw))]
	return role, ok
}

// RolesEqual reports whether two raw role strings name the same role after
// normalization. Unknown values only compare equal to themselves, ignoring
// case.
func RolesEqual(a, b string) bool {
	ra, okA := NormalizeRole(a)
	rb, okB := NormalizeRole(b)
	if okA && okB {
		return ra == rb
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// UserStatus marks whether an account is usable.
type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

// User is a persisted dashboard account.
type User struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

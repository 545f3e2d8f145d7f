package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aiauto/dashboard-api/internal/core/domain"
)

// RequireRole gates a route to the given roles. Comparison is alias-aware, so
// a token carrying "Site Manager" passes a gate declared with "project_site".
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			for _, allowed := range allowedRoles {
				if domain.RolesEqual(role, string(allowed)) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}

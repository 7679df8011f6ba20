package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-service/internal/core/authz"
)

// RBAC enforces role-based access control on top of the identity resolved by
// Auth. The request passes when the identity holds any of the allowed roles;
// no identity or no matching role denies with 403.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := Identity(c)
			for _, role := range allowedRoles {
				if authz.RequireRole(id, role) == nil {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}

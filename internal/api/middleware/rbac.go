package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campstead/reservation-api/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after one of the
// authentication middlewares: a missing role means no identity was resolved
// (401), a known role outside the allowed set is a policy denial, raised as
// domain.ErrForbidden for the central error handler to map (403).
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

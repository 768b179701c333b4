package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole rejects identities whose role is not in the allow-list.
// Runs after Session; a token carrying an unknown role is rejected even
// though its signature verified.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := Identity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			if _, ok := allowed[id.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/ports"
)

// SessionCookie is the cookie carrying the signed session token. The name
// is wire contract with existing admin frontends.
const SessionCookie = "auth_token"

// identityKey is the echo context key the verified identity is stored under.
const identityKey = "identity"

// Session extracts the session cookie, verifies it, and injects the
// resulting identity into the request context. It is the single
// authentication enforcement point: a missing or invalid token
// short-circuits with 401 and the handler is never invoked. The token is
// never mutated or renewed here.
func Session(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			identity, err := tokens.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// Identity returns the identity attached by Session.
func Identity(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}

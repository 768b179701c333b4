package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/api/middleware"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware.
// Its presence proves the middleware ran; a handler reached without one is
// a routing mistake and is rejected with 401, never served unscoped.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

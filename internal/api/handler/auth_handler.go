package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/api/metrics"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/api/middleware"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/ports"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/service"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Msg        string `json:"msg"`
	User       string `json:"user"`
	Department string `json:"department"`
}

// Login authenticates an admin and sets the session cookie.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       / [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Invalid credentials"})
	}

	token, identity, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrTooManyAttempts) {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, map[string]string{"msg": "Too many attempts"})
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Invalid credentials"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	// Cookie lifetime matches the token expiry exactly; the cookie is the
	// only transport and is never refreshed.
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	return c.JSON(http.StatusOK, loginResponse{
		Msg:        "success",
		User:       identity.Role,
		Department: identity.Department,
	})
}

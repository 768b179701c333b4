package ports

import (
	"context"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
)

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	Issue(id domain.Identity) (string, error)
	// Verify fails closed: a missing, malformed, tampered or expired
	// token yields domain.ErrUnauthenticated with no partial state.
	Verify(token string) (domain.Identity, error)
}

// AuthService authenticates admin credentials and mints a session token.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, domain.Identity, error)
}

// LoginThrottle limits failed login attempts per username.
type LoginThrottle interface {
	// Allow reports whether another attempt may proceed. Implementations
	// should fail open on backend errors.
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
}

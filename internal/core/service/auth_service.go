package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/ports"
)

// AuthService authenticates admins against the immutable credential table
// built at startup and mints session tokens on success.
type AuthService struct {
	creds    []domain.AdminCredential
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	log      zerolog.Logger
}

// NewAuthService builds an AuthService. throttle may be nil, in which case
// no attempt limiting is applied.
func NewAuthService(creds []domain.AdminCredential, tokens ports.TokenService, throttle ports.LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{creds: creds, tokens: tokens, throttle: throttle, log: log}
}

// Login walks the credential table and compares the supplied password with
// the stored bcrypt hash. A match yields a signed session token and the
// identity it embeds; any mismatch is domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.Identity, error) {
	if username == "" || password == "" {
		return "", domain.Identity{}, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, username)
		if err != nil {
			// Fail open: availability over throttling for a trusted-admin surface.
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle unavailable")
		} else if !ok {
			return "", domain.Identity{}, domain.ErrTooManyAttempts
		}
	}

	for _, cred := range s.creds {
		if cred.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
			break
		}

		identity := domain.Identity{Role: cred.Role, Department: cred.Department}
		token, err := s.tokens.Issue(identity)
		if err != nil {
			return "", domain.Identity{}, err
		}

		s.log.Info().Str("role", identity.Role).Str("department", identity.Department).Msg("admin login")
		return token, identity, nil
	}

	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
		}
	}
	return "", domain.Identity{}, domain.ErrInvalidCredentials
}

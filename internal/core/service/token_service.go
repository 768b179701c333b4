package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
)

// TokenTTL is the fixed session lifetime (259200 seconds). Together with
// the claim names "user" and "department" and the auth_token cookie it is
// wire contract with existing clients.
const TokenTTL = 3 * 24 * time.Hour

// TokenService signs and verifies HS256 session tokens. The signing key
// is process-wide configuration; rotating it invalidates every
// outstanding session.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: TokenTTL, now: time.Now}
}

// Issue produces a signed token embedding the identity and an expiry of
// now + TTL. Pure construction: transport is the caller's concern.
func (s *TokenService) Issue(id domain.Identity) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"user":       id.Role,
		"department": id.Department,
		"iat":        now.Unix(),
		"exp":        now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes the token and checks signature and expiry. Verification
// is binary: any decode, signature, algorithm or expiry failure yields
// domain.ErrUnauthenticated.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	role, _ := claims["user"].(string)
	department, _ := claims["department"].(string)
	if role != domain.RoleSuperAdmin && role != domain.RoleDepartmentAdmin {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	return domain.Identity{Role: role, Department: department}, nil
}

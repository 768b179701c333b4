package domain

import "errors"

const (
	RoleSuperAdmin      = "super_admin"
	RoleDepartmentAdmin = "department_admin"
)

// DepartmentAll is the reserved department value granting unrestricted
// visibility over registrant records.
const DepartmentAll = "all"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrTooManyAttempts = errors.New("too many login attempts")

// Identity is the authenticated actor carried inside a session token.
// It is immutable once issued and never persisted server-side.
type Identity struct {
	Role       string `json:"user"`
	Department string `json:"department"`
}

// AdminCredential is one row of the immutable credential table built from
// process configuration at startup. Passwords are stored as bcrypt hashes.
type AdminCredential struct {
	Username     string
	PasswordHash string
	Role         string
	Department   string
}

package ports

import (
	"context"
	"errors"

	"coldstore/internal/core/domain/model/role"
)

// ErrInvalidCredentials is returned when authentication fails. The caller
// is never told whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the result of a successful authentication. The role travels
// with every subsequent command; the engine re-checks the role policy on
// each operation regardless.
type Session struct {
	Username string
	Role     role.Role
}

// UserDirectory resolves credentials to a role. The production adapter is
// seeded from the composition root; tests substitute their own.
type UserDirectory interface {
	Authenticate(ctx context.Context, username, password string) (Session, error)
}

package memory

import (
	"context"
	"crypto/subtle"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/ports"
)

// Account is one seeded user of the directory.
type Account struct {
	Username string
	Password string
	Role     role.Role
}

// UserDirectory is a fixed-size, in-memory implementation of
// ports.UserDirectory, seeded once from the composition root.
type UserDirectory struct {
	accounts map[string]Account
}

// NewUserDirectory creates a directory over the given accounts. Later
// duplicates of a username win.
func NewUserDirectory(accounts []Account) *UserDirectory {
	byName := make(map[string]Account, len(accounts))
	for _, account := range accounts {
		byName[account.Username] = account
	}
	return &UserDirectory{accounts: byName}
}

// Authenticate resolves credentials to a session. The error never reveals
// whether the username or the password was wrong.
func (d *UserDirectory) Authenticate(_ context.Context, username, password string) (ports.Session, error) {
	account, ok := d.accounts[username]
	if !ok {
		return ports.Session{}, ports.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return ports.Session{}, ports.ErrInvalidCredentials
	}
	return ports.Session{Username: account.Username, Role: account.Role}, nil
}

package admin

import (
	"errors"

	"salon-storefront/internal/pkg/errs"
	"salon-storefront/internal/pkg/password"
)

// The storefront has a single built-in administrator. The token handed out
// on login is a fixed label, not a credential: nothing verifies it later.
const (
	Username    = "admin"
	Password    = "admin123"
	TokenPrefix = "admin_token_"
)

var ErrInvalidCredentials = errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthorized)

type Session struct {
	Username string
	Token    string
}

// CredentialChecker compares login attempts against the built-in pair. The
// password is held only as a bcrypt hash.
type CredentialChecker struct {
	username     string
	passwordHash string
}

func NewCredentialChecker() (*CredentialChecker, error) {
	return fromHash(password.HashPassword(Password))
}

func newCredentialChecker(cost int) (*CredentialChecker, error) {
	return fromHash(password.HashPasswordWithCost(Password, cost))
}

func fromHash(hash string, err error) (*CredentialChecker, error) {
	if err != nil {
		return nil, errs.Wrap(err, "hash admin password")
	}
	return &CredentialChecker{username: Username, passwordHash: hash}, nil
}

func (c *CredentialChecker) Check(username, pw string) (*Session, error) {
	if username != c.username {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(c.passwordHash, pw); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "compare admin password")
	}
	return &Session{Username: username, Token: TokenFor(username)}, nil
}

func TokenFor(username string) string {
	return TokenPrefix + username
}

package commands

import (
	"context"
	"log/slog"

	"salon-storefront/internal/domain/admin"
	"salon-storefront/internal/pkg/errs"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=mock_commands

type CredentialChecker interface {
	Check(username, password string) (*admin.Session, error)
}

type LoginResult struct {
	Username string
	Token    string
}

type AdminCommands interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type adminCommandsImpl struct {
	checker CredentialChecker
}

func NewAdminCommands(checker CredentialChecker) AdminCommands {
	return &adminCommandsImpl{checker: checker}
}

func (a *adminCommandsImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	session, err := a.checker.Check(username, password)
	if err != nil {
		if errs.Is(err, errs.ErrUnauthorized) {
			// Same error for unknown user and wrong password
			slog.WarnContext(ctx, "admin login rejected", "username", username)
			return nil, admin.ErrInvalidCredentials
		}
		return nil, err
	}
	slog.InfoContext(ctx, "admin login", "username", session.Username)
	return &LoginResult{Username: session.Username, Token: session.Token}, nil
}

//go:build unit

package commands_test

import (
	"context"
	"testing"

	"salon-storefront/internal/domain/admin"
	"salon-storefront/internal/pkg/errs"
	"salon-storefront/internal/usecase/commands"
	commandsmock "salon-storefront/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminCommands_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := commandsmock.NewMockCredentialChecker(ctrl)
		checker.EXPECT().Check("admin", "admin123").Return(&admin.Session{Username: "admin", Token: "admin_token_admin"}, nil)

		res, err := commands.NewAdminCommands(checker).Login(ctx, "admin", "admin123")

		require.NoError(t, err)
		assert.Equal(t, "admin_token_admin", res.Token)
	})

	t.Run("error: wrong password is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := commandsmock.NewMockCredentialChecker(ctrl)
		checker.EXPECT().Check("admin", "nope").Return(nil, admin.ErrInvalidCredentials)

		_, err := commands.NewAdminCommands(checker).Login(ctx, "admin", "nope")

		assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})
}

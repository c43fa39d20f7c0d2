//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"salon-storefront/internal/domain/admin"
	"salon-storefront/internal/handler/api"
	"salon-storefront/internal/usecase/commands"
	"salon-storefront/tests/common/httptest"
	commandsmock "salon-storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAdminRouter(t *testing.T) (*gin.Engine, *commandsmock.MockAdminCommands, *commandsmock.MockSeedCommands) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	ctrl := gomock.NewController(t)
	adminCmds := commandsmock.NewMockAdminCommands(ctrl)
	seedCmds := commandsmock.NewMockSeedCommands(ctrl)

	r := gin.New()
	r.POST("/admin/login", api.NewAdminHandler(adminCmds).Login)
	r.POST("/seed-data", api.NewSeedHandler(seedCmds).Seed)
	return r, adminCmds, seedCmds
}

func TestAdminHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *commandsmock.MockAdminCommands)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"username":"admin","password":"admin123"}`,
			setup: func(m *commandsmock.MockAdminCommands) {
				m.EXPECT().Login(gomock.Any(), "admin", "admin123").
					Return(&commands.LoginResult{Username: "admin", Token: "admin_token_admin"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Login successful","token":"admin_token_admin"}`,
		},
		{
			name: "wrong password",
			body: `{"username":"admin","password":"nope"}`,
			setup: func(m *commandsmock.MockAdminCommands) {
				m.EXPECT().Login(gomock.Any(), "admin", "nope").Return(nil, admin.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":{"message":"Invalid credentials"},"detail":"Invalid credentials"}`,
		},
		{
			name: "empty strings are a wrong credential, not a bad request",
			body: `{"username":"","password":""}`,
			setup: func(m *commandsmock.MockAdminCommands) {
				m.EXPECT().Login(gomock.Any(), "", "").Return(nil, admin.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       `{"username":"admin"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not JSON",
			body:       `username=admin`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"username":"admin","password":"admin123","remember":true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "checker failure is a server fault",
			body: `{"username":"admin","password":"admin123"}`,
			setup: func(m *commandsmock.MockAdminCommands) {
				m.EXPECT().Login(gomock.Any(), "admin", "admin123").Return(nil, errors.New("bcrypt exploded"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, adminCmds, _ := setupAdminRouter(t)
			if tt.setup != nil {
				tt.setup(adminCmds)
			}

			rec := httptest.PerformRawRequest(t, r, http.MethodPost, "/admin/login", []byte(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestSeedHandler_Seed(t *testing.T) {
	t.Run("first run", func(t *testing.T) {
		r, _, seedCmds := setupAdminRouter(t)
		seedCmds.EXPECT().Seed(gomock.Any()).
			Return(&commands.SeedResult{Seeded: true, Message: commands.SeedMessageInserted}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/seed-data", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Data seeded successfully"}`, rec.Body.String())
	})

	t.Run("already seeded", func(t *testing.T) {
		r, _, seedCmds := setupAdminRouter(t)
		seedCmds.EXPECT().Seed(gomock.Any()).
			Return(&commands.SeedResult{Seeded: false, Message: commands.SeedMessageSkipped}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/seed-data", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Data already seeded"}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		r, _, seedCmds := setupAdminRouter(t)
		seedCmds.EXPECT().Seed(gomock.Any()).Return(nil, errors.New("insert failed"))

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/seed-data", nil)
		httptest.AssertErrorDetail(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"salon-storefront/internal/handler/api"
	"salon-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		ping       error
		wantStatus int
	}{
		{name: "store answers", wantStatus: http.StatusOK},
		{name: "store unreachable", ping: errors.New("server selection timeout"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", api.NewHealthHandler(pingFunc(func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return tt.ping
			})).Check)

			rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

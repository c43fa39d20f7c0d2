package middleware

import (
	"log/slog"
	"slices"

	"salon-storefront/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcard = "*"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// cors rejects "*" mixed into AllowOrigins; it has a dedicated switch
	if slices.Contains(cfg.AllowOrigins, wildcard) {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowOrigins = nil
	}
	if slices.Contains(cfg.AllowMethods, wildcard) {
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	}
	slog.Info("CORS middleware initialized", "AllowAllOrigins", corsCfg.AllowAllOrigins, "AllowOrigins", corsCfg.AllowOrigins)
	return cors.New(corsCfg)
}

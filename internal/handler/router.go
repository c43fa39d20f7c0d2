package handler

import (
	"net/http"

	"salon-storefront/internal/handler/api"
	reqdto "salon-storefront/internal/handler/dto/request"
	"salon-storefront/internal/handler/middleware"
	"salon-storefront/internal/metrics"
	"salon-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers collects everything the route table points at.
type Handlers struct {
	fx.In

	Product *api.ProductHandler
	Booking *api.BookingHandler
	Review  *api.ReviewHandler
	Service *api.ServiceHandler
	Gallery *api.GalleryHandler
	Admin   *api.AdminHandler
	Seed    *api.SeedHandler
	Health  *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers) error {
	gin.EnableJsonDecoderDisallowUnknownFields()
	if err := reqdto.RegisterValidations(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, m, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers) {
	engine.GET("/health", h.Health.Check)

	if cfg.Metrics.Enabled && m != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Product.List},
			{Method: http.MethodPost, Path: "", Handler: h.Product.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Product.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateStatus},
		})

		addRoutes(apiGroup.Group("/reviews"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Review.List},
			{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Review.UpdateApproval},
		})

		addRoutes(apiGroup.Group("/services"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Service.List},
			{Method: http.MethodPost, Path: "", Handler: h.Service.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Service.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Service.Delete},
		})

		addRoutes(apiGroup.Group("/gallery"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Gallery.List},
			{Method: http.MethodPost, Path: "", Handler: h.Gallery.Create},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Gallery.Delete},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/admin/login", Handler: h.Admin.Login},
			{Method: http.MethodPost, Path: "/seed-data", Handler: h.Seed.Seed},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

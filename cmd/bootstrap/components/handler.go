package components

import (
	"salon-storefront/internal/handler"
	"salon-storefront/internal/handler/api"
	"salon-storefront/internal/infra/db"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewServiceHandler,
		api.NewGalleryHandler,
		api.NewAdminHandler,
		api.NewSeedHandler,
		api.NewHealthHandler,
		fx.Annotate(
			db.NewPinger,
			fx.As(new(api.Pinger)),
		),
	),
	fx.Invoke(handler.NewRouter),
)

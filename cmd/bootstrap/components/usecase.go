package components

import (
	"salon-storefront/internal/domain/admin"
	"salon-storefront/internal/pkg/clock"
	"salon-storefront/internal/usecase/commands"
	"salon-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		admin.NewCredentialChecker,
		fx.As(new(commands.CredentialChecker)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewProductCommands,
		commands.NewBookingCommands,
		commands.NewReviewCommands,
		commands.NewServiceCommands,
		commands.NewGalleryCommands,
		commands.NewAdminCommands,
		commands.NewSeedCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewServiceQueries,
		queries.NewGalleryQueries,
	),
)

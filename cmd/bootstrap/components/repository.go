package components

import (
	"salon-storefront/internal/infra/db"
	"salon-storefront/internal/infra/repository"
	"salon-storefront/internal/usecase/commands"
	"salon-storefront/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

// Each repository serves both the read side (queries) and the write side
// (commands) of its collection.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Product
		fx.Annotate(
			NewProductRepository,
			fx.As(fx.Self()),
			fx.As(new(queries.ProductReadStore)),
			fx.As(new(commands.ProductRepository)),
		),
		// Booking
		fx.Annotate(
			NewBookingRepository,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.BookingRepository)),
		),
		// Review
		fx.Annotate(
			NewReviewRepository,
			fx.As(fx.Self()),
			fx.As(new(queries.ReviewReadStore)),
			fx.As(new(commands.ReviewRepository)),
		),
		// Service
		fx.Annotate(
			NewServiceRepository,
			fx.As(fx.Self()),
			fx.As(new(queries.ServiceReadStore)),
			fx.As(new(commands.ServiceRepository)),
		),
		// Gallery
		fx.Annotate(
			NewGalleryRepository,
			fx.As(new(queries.GalleryReadStore)),
			fx.As(new(commands.GalleryRepository)),
		),
		// Seed
		fx.Annotate(
			repository.NewSeedRepository,
			fx.As(new(commands.SeedWriter)),
		),
	),
)

func NewProductRepository(database *mongo.Database) *repository.ProductRepository {
	return repository.NewProductRepository(database.Collection(db.CollectionProducts))
}

func NewBookingRepository(database *mongo.Database) *repository.BookingRepository {
	return repository.NewBookingRepository(database.Collection(db.CollectionBookings))
}

func NewReviewRepository(database *mongo.Database) *repository.ReviewRepository {
	return repository.NewReviewRepository(database.Collection(db.CollectionReviews))
}

func NewServiceRepository(database *mongo.Database) *repository.ServiceRepository {
	return repository.NewServiceRepository(database.Collection(db.CollectionServices))
}

func NewGalleryRepository(database *mongo.Database) *repository.GalleryRepository {
	return repository.NewGalleryRepository(database.Collection(db.CollectionGallery))
}

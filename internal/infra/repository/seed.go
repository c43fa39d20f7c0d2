package repository

import (
	"context"

	"salon-storefront/internal/domain/product"
	"salon-storefront/internal/domain/review"
	"salon-storefront/internal/domain/service"
)

// SeedRepository fans the demo data loader out to the entity repositories.
type SeedRepository struct {
	products *ProductRepository
	services *ServiceRepository
	reviews  *ReviewRepository
}

func NewSeedRepository(products *ProductRepository, services *ServiceRepository, reviews *ReviewRepository) *SeedRepository {
	return &SeedRepository{products: products, services: services, reviews: reviews}
}

func (r *SeedRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.products.Count(ctx)
}

func (r *SeedRepository) InsertProducts(ctx context.Context, ps []*product.Product) error {
	return r.products.InsertMany(ctx, ps)
}

func (r *SeedRepository) InsertServices(ctx context.Context, ss []*service.Service) error {
	return r.services.InsertMany(ctx, ss)
}

func (r *SeedRepository) InsertReviews(ctx context.Context, rs []*review.Review) error {
	return r.reviews.InsertMany(ctx, rs)
}

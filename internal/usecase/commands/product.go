package commands

import (
	"context"

	"salon-storefront/internal/domain/product"
	"salon-storefront/internal/pkg/clock"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/commands/product.go -package=mock_commands

type ProductRepository interface {
	Insert(ctx context.Context, p *product.Product) (string, error)
	FindByID(ctx context.Context, id string) (*product.Product, error)
	Replace(ctx context.Context, id string, p *product.Product) error
	Delete(ctx context.Context, id string) error
}

type ProductCommands interface {
	Create(ctx context.Context, attrs product.Attributes) (*product.Product, error)
	Replace(ctx context.Context, id string, attrs product.Attributes) (*product.Product, error)
	Delete(ctx context.Context, id string) error
}

type productCommandsImpl struct {
	repo  ProductRepository
	clock clock.Clock
}

func NewProductCommands(repo ProductRepository, clk clock.Clock) ProductCommands {
	return &productCommandsImpl{repo: repo, clock: clk}
}

func (uc *productCommandsImpl) Create(ctx context.Context, attrs product.Attributes) (*product.Product, error) {
	p, err := product.New(attrs, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	id, err := uc.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// Replace overwrites every field of the product. Fields the caller omits
// take their defaults, they are not kept from the stored version.
func (uc *productCommandsImpl) Replace(ctx context.Context, id string, attrs product.Attributes) (*product.Product, error) {
	p, err := product.New(attrs, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Replace(ctx, id, p); err != nil {
		return nil, notFoundAs(err, product.ErrNotFound)
	}
	return reread(func() (*product.Product, error) { return uc.repo.FindByID(ctx, id) }, product.ErrNotFound)
}

func (uc *productCommandsImpl) Delete(ctx context.Context, id string) error {
	return notFoundAs(uc.repo.Delete(ctx, id), product.ErrNotFound)
}

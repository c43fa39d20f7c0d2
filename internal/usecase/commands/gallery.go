package commands

import (
	"context"

	"salon-storefront/internal/domain/gallery"
	"salon-storefront/internal/pkg/clock"
)

//go:generate mockgen -source=gallery.go -destination=../../../tests/mock/commands/gallery.go -package=mock_commands

type GalleryRepository interface {
	Insert(ctx context.Context, item *gallery.Item) (string, error)
	Delete(ctx context.Context, id string) error
}

type GalleryCommands interface {
	Create(ctx context.Context, attrs gallery.Attributes) (*gallery.Item, error)
	Delete(ctx context.Context, id string) error
}

type galleryCommandsImpl struct {
	repo  GalleryRepository
	clock clock.Clock
}

func NewGalleryCommands(repo GalleryRepository, clk clock.Clock) GalleryCommands {
	return &galleryCommandsImpl{repo: repo, clock: clk}
}

func (uc *galleryCommandsImpl) Create(ctx context.Context, attrs gallery.Attributes) (*gallery.Item, error) {
	item, err := gallery.New(attrs, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	id, err := uc.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (uc *galleryCommandsImpl) Delete(ctx context.Context, id string) error {
	return notFoundAs(uc.repo.Delete(ctx, id), gallery.ErrNotFound)
}

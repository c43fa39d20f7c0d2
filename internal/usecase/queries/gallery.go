package queries

import (
	"context"

	"salon-storefront/internal/domain/gallery"
)

//go:generate mockgen -source=gallery.go -destination=../../../tests/mock/queries/gallery.go -package=mock_queries

type GalleryReadStore interface {
	Find(ctx context.Context, limit int64) ([]*gallery.Item, error)
}

type GalleryQueries interface {
	List(ctx context.Context) ([]*gallery.Item, error)
}

type galleryQueriesImpl struct {
	store GalleryReadStore
}

func NewGalleryQueries(store GalleryReadStore) GalleryQueries {
	return &galleryQueriesImpl{store: store}
}

func (q *galleryQueriesImpl) List(ctx context.Context) ([]*gallery.Item, error) {
	return q.store.Find(ctx, ListLimit)
}

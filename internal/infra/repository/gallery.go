package repository

import (
	"context"

	"salon-storefront/internal/domain/gallery"
	"salon-storefront/internal/infra/db"
	"salon-storefront/internal/infra/docstore"
	"salon-storefront/internal/infra/repository/converter"
)

type GalleryRepository struct {
	store *docstore.Store[converter.GalleryDocument]
}

func NewGalleryRepository(coll docstore.Collection) *GalleryRepository {
	return &GalleryRepository{store: docstore.New[converter.GalleryDocument](coll, db.CollectionGallery)}
}

func (r *GalleryRepository) Find(ctx context.Context, limit int64) ([]*gallery.Item, error) {
	docs, err := r.store.Find(ctx, docstore.Query{Sort: newestFirst, Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]*gallery.Item, 0, len(docs))
	for _, d := range docs {
		out = append(out, converter.GalleryFromDocument(d))
	}
	return out, nil
}

func (r *GalleryRepository) Insert(ctx context.Context, item *gallery.Item) (string, error) {
	d := converter.GalleryToDocument(item)
	return r.store.Insert(ctx, &d)
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteByID(ctx, id)
}

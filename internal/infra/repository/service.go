package repository

import (
	"context"

	"salon-storefront/internal/domain/service"
	"salon-storefront/internal/infra/db"
	"salon-storefront/internal/infra/docstore"
	"salon-storefront/internal/infra/repository/converter"
)

type ServiceRepository struct {
	store *docstore.Store[converter.ServiceDocument]
}

func NewServiceRepository(coll docstore.Collection) *ServiceRepository {
	return &ServiceRepository{store: docstore.New[converter.ServiceDocument](coll, db.CollectionServices)}
}

func (r *ServiceRepository) Find(ctx context.Context, limit int64) ([]*service.Service, error) {
	docs, err := r.store.Find(ctx, docstore.Query{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]*service.Service, 0, len(docs))
	for _, d := range docs {
		out = append(out, converter.ServiceFromDocument(d))
	}
	return out, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*service.Service, error) {
	d, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ServiceFromDocument(*d), nil
}

func (r *ServiceRepository) Insert(ctx context.Context, s *service.Service) (string, error) {
	d := converter.ServiceToDocument(s)
	return r.store.Insert(ctx, &d)
}

func (r *ServiceRepository) Replace(ctx context.Context, id string, s *service.Service) error {
	d := converter.ServiceToDocument(s)
	return r.store.ReplaceByID(ctx, id, &d)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteByID(ctx, id)
}

func (r *ServiceRepository) InsertMany(ctx context.Context, ss []*service.Service) error {
	docs := make([]converter.ServiceDocument, 0, len(ss))
	for _, s := range ss {
		docs = append(docs, converter.ServiceToDocument(s))
	}
	return r.store.InsertMany(ctx, docs)
}

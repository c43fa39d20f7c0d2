package queries

import (
	"context"

	"salon-storefront/internal/domain/service"
)

//go:generate mockgen -source=service.go -destination=../../../tests/mock/queries/service.go -package=mock_queries

type ServiceReadStore interface {
	Find(ctx context.Context, limit int64) ([]*service.Service, error)
}

type ServiceQueries interface {
	List(ctx context.Context) ([]*service.Service, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) List(ctx context.Context) ([]*service.Service, error) {
	return q.store.Find(ctx, ListLimit)
}

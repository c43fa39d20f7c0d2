package repository

import (
	"context"

	"salon-storefront/internal/domain/booking"
	"salon-storefront/internal/infra/db"
	"salon-storefront/internal/infra/docstore"
	"salon-storefront/internal/infra/repository/converter"
	"salon-storefront/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
)

type BookingRepository struct {
	store *docstore.Store[converter.BookingDocument]
}

func NewBookingRepository(coll docstore.Collection) *BookingRepository {
	return &BookingRepository{store: docstore.New[converter.BookingDocument](coll, db.CollectionBookings)}
}

func (r *BookingRepository) Find(ctx context.Context, filter queries.BookingFilter, limit int64) ([]*booking.Booking, error) {
	q := bson.D{}
	if filter.Status != nil {
		q = append(q, bson.E{Key: "status", Value: *filter.Status})
	}

	docs, err := r.store.Find(ctx, docstore.Query{Filter: q, Sort: newestFirst, Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]*booking.Booking, 0, len(docs))
	for _, d := range docs {
		out = append(out, converter.BookingFromDocument(d))
	}
	return out, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	d, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.BookingFromDocument(*d), nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (string, error) {
	d := converter.BookingToDocument(b)
	return r.store.Insert(ctx, &d)
}

func (r *BookingRepository) SetStatus(ctx context.Context, id string, status booking.Status) error {
	return r.store.SetByID(ctx, id, bson.D{{Key: "status", Value: status.String()}})
}

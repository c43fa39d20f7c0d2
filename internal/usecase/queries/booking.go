package queries

import (
	"context"

	"salon-storefront/internal/domain/booking"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=mock_queries

type BookingReadStore interface {
	Find(ctx context.Context, filter BookingFilter, limit int64) ([]*booking.Booking, error)
}

type BookingQueries interface {
	List(ctx context.Context, filter BookingFilter) ([]*booking.Booking, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// List returns bookings newest first. The status filter is matched
// verbatim; an unknown status simply matches nothing.
func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*booking.Booking, error) {
	return q.store.Find(ctx, filter, ListLimit)
}

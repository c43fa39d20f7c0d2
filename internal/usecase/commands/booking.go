package commands

import (
	"context"

	"salon-storefront/internal/domain/booking"
	"salon-storefront/internal/infra/docid"
	"salon-storefront/internal/metrics"
	"salon-storefront/internal/pkg/clock"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=mock_commands

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) (string, error)
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	SetStatus(ctx context.Context, id string, status booking.Status) error
}

type BookingCommands interface {
	Create(ctx context.Context, attrs booking.Attributes) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	repo    BookingRepository
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewBookingCommands(repo BookingRepository, clk clock.Clock, m *metrics.Metrics) BookingCommands {
	return &bookingCommandsImpl{repo: repo, clock: clk, metrics: m}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, attrs booking.Attributes) (*booking.Booking, error) {
	b, err := booking.New(attrs, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	id, err := uc.repo.Insert(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = id
	uc.metrics.IncBookingCreated(b.Status.String())
	return b, nil
}

// UpdateStatus changes only the status; every other field is kept. A
// malformed id is reported before the status is looked at.
func (uc *bookingCommandsImpl) UpdateStatus(ctx context.Context, id string, status string) (*booking.Booking, error) {
	if err := docid.Validate(id); err != nil {
		return nil, err
	}
	st, err := booking.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SetStatus(ctx, id, st); err != nil {
		return nil, notFoundAs(err, booking.ErrNotFound)
	}
	uc.metrics.IncBookingStatusChanged(st.String())
	return reread(func() (*booking.Booking, error) { return uc.repo.FindByID(ctx, id) }, booking.ErrNotFound)
}

//go:build unit || e2e

package builder

import (
	"time"

	dombooking "salon-storefront/internal/domain/booking"
	reqdto "salon-storefront/internal/handler/dto/request"
	"salon-storefront/internal/pkg/ptr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingBuilder struct {
	ID        string
	Name      string
	Phone     string
	Email     *string
	Service   string
	Date      string
	Time      string
	Message   *string
	Status    dombooking.Status
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        primitive.NewObjectID().Hex(),
		Name:      "Amara Osei",
		Phone:     "+44 7700 900123",
		Email:     ptr.Of("amara@example.com"),
		Service:   "Bridal Makeup",
		Date:      "2024-06-14",
		Time:      "10:30",
		Message:   ptr.Of("Trial session first, please"),
		Status:    dombooking.StatusPending,
		CreatedAt: time.Date(2024, 5, 2, 9, 15, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return &dombooking.Booking{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     b.Email,
		Service:   b.Service,
		Date:      b.Date,
		Time:      b.Time,
		Message:   b.Message,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}

// BuildRequestDTO omits status so the default applies.
func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		Name:    b.Name,
		Phone:   b.Phone,
		Email:   b.Email,
		Service: b.Service,
		Date:    b.Date,
		Time:    b.Time,
		Message: b.Message,
	}
}

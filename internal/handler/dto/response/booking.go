package response

import (
	"time"

	"salon-storefront/internal/domain/booking"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Service   string    `json:"service"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Message   *string   `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, b); err != nil {
		return nil, err
	}
	res.Status = b.Status.String()
	return &res, nil
}

func FromBookings(bs []*booking.Booking) ([]*BookingResponse, error) {
	return mapAll(bs, FromBooking)
}

package request

import (
	"time"

	"salon-storefront/internal/domain/booking"
)

type BookingRequest struct {
	Name      string     `json:"name" binding:"required"`
	Phone     string     `json:"phone" binding:"required"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Service   string     `json:"service" binding:"required"`
	Date      string     `json:"date" binding:"required"`
	Time      string     `json:"time" binding:"required"`
	Message   *string    `json:"message"`
	Status    *string    `json:"status" binding:"omitempty,booking_status"`
	CreatedAt *time.Time `json:"createdAt"`
}

func (r *BookingRequest) ToAttributes() booking.Attributes {
	return booking.Attributes{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Service:   r.Service,
		Date:      r.Date,
		Time:      r.Time,
		Message:   r.Message,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

type BookingListQuery struct {
	Status *string `form:"status"`
}

// StatusFilter returns nil for a missing or empty ?status=.
func (q *BookingListQuery) StatusFilter() *string {
	return nonEmpty(q.Status)
}

package request

import (
	"salon-storefront/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagBookingStatus accepts only the booking lifecycle states.
const TagBookingStatus = "booking_status"

// RegisterValidations installs the custom rules on gin's validator. It is
// safe to call more than once.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation(TagBookingStatus, func(fl validator.FieldLevel) bool {
		return booking.Status(fl.Field().String()).Valid()
	})
}

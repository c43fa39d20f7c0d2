package booking

import (
	"strings"
	"time"

	"salon-storefront/internal/pkg/clock"
	"salon-storefront/internal/pkg/errs"
	"salon-storefront/internal/pkg/patch"
)

var (
	ErrNotFound     = errs.NotFound("booking not found")
	ErrEmptyName    = errs.Validation("booking name is required")
	ErrEmptyPhone   = errs.Validation("booking phone is required")
	ErrEmptyService = errs.Validation("booking service is required")
)

// Booking is a service appointment request. Date and Time are kept exactly
// as the customer typed them.
type Booking struct {
	ID        string
	Name      string
	Phone     string
	Email     *string
	Service   string
	Date      string
	Time      string
	Message   *string
	Status    Status
	CreatedAt time.Time
}

type Attributes struct {
	Name      string
	Phone     string
	Email     *string
	Service   string
	Date      string
	Time      string
	Message   *string
	Status    *string
	CreatedAt *time.Time
}

func New(attrs Attributes, now time.Time) (*Booking, error) {
	status, err := ParseStatus(patch.Coalesce(attrs.Status, string(StatusPending)))
	if err != nil {
		return nil, err
	}
	b := &Booking{
		Name:      attrs.Name,
		Phone:     attrs.Phone,
		Email:     attrs.Email,
		Service:   attrs.Service,
		Date:      attrs.Date,
		Time:      attrs.Time,
		Message:   attrs.Message,
		Status:    status,
		CreatedAt: clock.Normalize(patch.Coalesce(attrs.CreatedAt, now)),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Booking) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(b.Phone) == "" {
		return ErrEmptyPhone
	}
	if strings.TrimSpace(b.Service) == "" {
		return ErrEmptyService
	}
	if !b.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

package service

import (
	"strings"

	"salon-storefront/internal/pkg/errs"
	"salon-storefront/internal/pkg/patch"
)

var (
	ErrNotFound      = errs.NotFound("service not found")
	ErrEmptyName     = errs.Validation("service name is required")
	ErrEmptyDuration = errs.Validation("service duration is required")
	ErrNegativePrice = errs.Validation("service price must not be negative")
	ErrEmptyImage    = errs.Validation("service image is required")
)

// Service is a bookable salon treatment. Unlike the other entities it
// carries no creation timestamp.
type Service struct {
	ID          string
	Name        string
	Description string
	Duration    string // free text, e.g. "45 mins"
	Price       float64
	Image       string
	Popular     bool
}

type Attributes struct {
	Name        string
	Description string
	Duration    string
	Price       float64
	Image       string
	Popular     *bool
}

func New(attrs Attributes) (*Service, error) {
	s := &Service{
		Name:        attrs.Name,
		Description: attrs.Description,
		Duration:    attrs.Duration,
		Price:       attrs.Price,
		Image:       attrs.Image,
		Popular:     patch.Coalesce(attrs.Popular, false),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.Duration) == "" {
		return ErrEmptyDuration
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	if s.Image == "" {
		return ErrEmptyImage
	}
	return nil
}

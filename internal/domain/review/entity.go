package review

import (
	"strings"
	"time"

	"salon-storefront/internal/pkg/clock"
	"salon-storefront/internal/pkg/errs"
	"salon-storefront/internal/pkg/patch"
)

var (
	ErrNotFound      = errs.NotFound("review not found")
	ErrInvalidRating = errs.Validation("review rating must be between 1 and 5")
	ErrEmptyName     = errs.Validation("review name is required")
	ErrEmptyComment  = errs.Validation("review comment is required")
)

// Review is a customer testimonial. New reviews are hidden until an admin
// approves them.
type Review struct {
	ID        string
	Name      string
	Rating    int
	Comment   string
	Approved  bool
	CreatedAt time.Time
}

type Attributes struct {
	Name      string
	Rating    int
	Comment   string
	Approved  *bool
	CreatedAt *time.Time
}

func New(attrs Attributes, now time.Time) (*Review, error) {
	rating, err := NewRating(attrs.Rating)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(attrs.Name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(attrs.Comment) == "" {
		return nil, ErrEmptyComment
	}
	return &Review{
		Name:      attrs.Name,
		Rating:    rating.Value(),
		Comment:   attrs.Comment,
		Approved:  patch.Coalesce(attrs.Approved, false),
		CreatedAt: clock.Normalize(patch.Coalesce(attrs.CreatedAt, now)),
	}, nil
}
